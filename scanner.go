// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jot

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number, with optional fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an input buffer.  The entire input must
// be resident in memory before scanning begins; each call to Next advances the
// scanner to the next token, or reports an error.
type Scanner struct {
	buf []byte // the complete input
	cur int    // cursor: offset of the next unread byte

	tok  Token
	text []byte // text capture of the current token; a view into buf
	pos  int    // start offset of the current token
	err  error
}

// NewScanner constructs a new lexical scanner that consumes input from data.
// The scanner does not copy or modify data; the caller must not mutate it
// while the scanner is in use.
func NewScanner(data []byte) *Scanner { return &Scanner{buf: data} }

// Next advances s to the next token of the input. It reports false when the
// input is exhausted, or when a lexical error prevents a token from being
// recognized. In the latter case the current token is Invalid and Err reports
// a non-nil error.
func (s *Scanner) Next() bool {
	s.tok = Invalid
	s.text = nil
	s.err = nil

	// Discard whitespace.
	for s.cur < len(s.buf) && isSpace(s.buf[s.cur]) {
		s.cur++
	}
	s.pos = s.cur
	if s.cur >= len(s.buf) {
		return false // end of input
	}

	ch := s.buf[s.cur]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.tok = t
		s.cur++
		return true
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle numbers.
	if isNumStart(ch) {
		return s.scanNumber()
	}

	// Handle constants: true, false, null.
	switch ch {
	case 't':
		return s.scanName(True, mem.S("true"))
	case 'f':
		return s.scanName(False, mem.S("false"))
	case 'n':
		return s.scanName(Null, mem.S("null"))
	}
	return s.failf("unexpected %q", ch)
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next, or nil if the scanner stopped
// at the end of the input without error.
func (s *Scanner) Err() error { return s.err }

// Text returns the text of the current token. For a string token the
// enclosing quotes are removed and the contents are not unescaped. The return
// value is a view into the input buffer, valid as long as the buffer is.
func (s *Scanner) Text() []byte { return s.text }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.cur} }

// scanString consumes a quoted string. Escape sequences are not decoded, but
// a backslash holds the string open across a following quote, so that only an
// unescaped quote terminates the capture.
func (s *Scanner) scanString() bool {
	start := s.cur + 1 // skip the open quote
	var esc bool
	for i := start; i < len(s.buf); i++ {
		ch := s.buf[i]
		if ch == '"' && !esc {
			s.text = s.buf[start:i]
			s.tok = String
			s.cur = i + 1
			return true
		}
		esc = ch == '\\' && !esc
	}
	s.cur = len(s.buf)
	return s.failf("unterminated string")
}

// scanNumber consumes a number greedily: an optional leading sign, then any
// run of digits, decimal points, exponent markers, and embedded signs.  The
// capture is not validated here; conversion reports malformed text.
func (s *Scanner) scanNumber() bool {
	i := s.cur + 1
	for i < len(s.buf) && isNumRune(s.buf[i]) {
		i++
	}
	if i >= len(s.buf) {
		// The buffer ended mid-number, leaving the lexeme unterminated.
		s.cur = i
		return s.failf("unterminated number")
	}
	s.text = s.buf[s.cur:i]
	s.tok = Number
	s.cur = i
	return true
}

func (s *Scanner) scanName(tok Token, want mem.RO) bool {
	end := s.cur + want.Len()
	if end > len(s.buf) || !mem.B(s.buf[s.cur:end]).Equal(want) {
		return s.failf("unknown constant")
	}
	s.text = s.buf[s.cur:end]
	s.tok = tok
	s.cur = end
	return true
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) failf(msg string, args ...any) bool {
	s.err = posError{s.pos, fmt.Errorf(msg, args...)}
	return false
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

// isNumRune reports whether ch may appear after the first byte of a number.
// The scan is deliberately greedy: fractions, exponent markers, and exponent
// signs are consumed without regard to position, and conversion catches
// anything malformed.
func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == 'e' || ch == '-'
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
