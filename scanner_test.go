// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jot_test

import (
	"testing"

	"github.com/creachadair/jot"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jot.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jot.Token{jot.True, jot.False, jot.Null}},

		// Punctuation
		{"{ [ ] } , :", []jot.Token{
			jot.LBrace, jot.LSquare, jot.RSquare, jot.RBrace, jot.Comma, jot.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc" `, []jot.Token{jot.String, jot.String, jot.String}},
		{`"\"quoted\"" `, []jot.Token{jot.String}},

		// Numbers. A trailing token is needed so the last number does not run
		// into the end of the buffer.
		{`0 -1 5139 2.3 5e9 3.6e4 -0.001e-100 {`, []jot.Token{
			jot.Number, jot.Number, jot.Number,
			jot.Number, jot.Number, jot.Number, jot.Number,
			jot.LBrace,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jot.Token{
			jot.LBrace, jot.True, jot.Comma, jot.String, jot.Colon,
			jot.Number, jot.Null, jot.LSquare, jot.RSquare, jot.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jot.Token{
			jot.LBrace,
			jot.String, jot.Colon, jot.True, jot.Comma,
			jot.String, jot.Colon,
			jot.LSquare,
			jot.Null, jot.Comma, jot.Number, jot.Comma, jot.Number,
			jot.RSquare,
			jot.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jot.Token{
			jot.String, jot.Comma, jot.Number, jot.Comma, jot.True,
			jot.False, jot.LSquare, jot.String, jot.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jot.Token
		s := jot.NewScanner([]byte(test.input))
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_text(t *testing.T) {
	mustScan := func(t *testing.T, input string, want jot.Token) *jot.Scanner {
		t.Helper()
		s := jot.NewScanner([]byte(input))
		if !s.Next() {
			t.Fatalf("Next failed: %v", s.Err())
		} else if s.Token() != want {
			t.Fatalf("Next token: got %v, want %v", s.Token(), want)
		}
		return s
	}

	t.Run("Number", func(t *testing.T) {
		s := mustScan(t, `-15 `, jot.Number)
		if got := string(s.Text()); got != "-15" {
			t.Errorf("Text: got %#q, want %#q", got, "-15")
		}
	})
	t.Run("String", func(t *testing.T) {
		// The capture excludes the quotes but keeps escapes undecoded.
		s := mustScan(t, `"a\tb c"`, jot.String)
		if got := string(s.Text()); got != `a\tb c` {
			t.Errorf("Text: got %#q, want %#q", got, `a\tb c`)
		}
	})
	t.Run("EscapedQuote", func(t *testing.T) {
		s := mustScan(t, `"a\"b"`, jot.String)
		if got := string(s.Text()); got != `a\"b` {
			t.Errorf("Text: got %#q, want %#q", got, `a\"b`)
		}
	})
	t.Run("Constants", func(t *testing.T) {
		mustScan(t, `true`, jot.True)
		mustScan(t, `false`, jot.False)
		mustScan(t, `null`, jot.Null)
	})
}

func TestScanner_invalid(t *testing.T) {
	tests := []struct {
		input string
		ok    int // number of tokens before the scanner stops
	}{
		{`@`, 0},             // unrecognized leading character
		{`"no close`, 0},     // unterminated string
		{`"esc\"`, 0},        // escape holds the string open
		{`125`, 0},           // number runs to end of buffer
		{`troo`, 0},          // misspelled constant
		{`nul`, 0},           // truncated constant
		{`{"a": %}`, 3},      // bad value character
		{`[1, 2, fake]`, 5},  // bad constant inside array
		{`{"key": "v} #`, 3}, // string consumes the close brace
	}

	for _, test := range tests {
		s := jot.NewScanner([]byte(test.input))
		var ok int
		for s.Next() {
			ok++
		}
		if s.Err() == nil {
			t.Errorf("Input %#q: scanner stopped without error", test.input)
		}
		if s.Token() != jot.Invalid {
			t.Errorf("Input %#q: stop token is %v, want %v", test.input, s.Token(), jot.Invalid)
		}
		if ok != test.ok {
			t.Errorf("Input %#q: got %d tokens before stop, want %d", test.input, ok, test.ok)
		}
	}
}

func TestScanner_span(t *testing.T) {
	s := jot.NewScanner([]byte(`  {"ab" : 12} `))
	type tokSpan struct {
		Tok jot.Token
		Sp  jot.Span
	}
	want := []tokSpan{
		{jot.LBrace, jot.Span{Pos: 2, End: 3}},
		{jot.String, jot.Span{Pos: 3, End: 7}},
		{jot.Colon, jot.Span{Pos: 8, End: 9}},
		{jot.Number, jot.Span{Pos: 10, End: 12}},
		{jot.RBrace, jot.Span{Pos: 12, End: 13}},
	}
	var got []tokSpan
	for s.Next() {
		got = append(got, tokSpan{s.Token(), s.Span()})
	}
	if s.Err() != nil {
		t.Errorf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans: (-want, +got)\n%s", diff)
	}
}
