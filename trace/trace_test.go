// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package trace_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/creachadair/jot/ast"
	"github.com/creachadair/jot/trace"
	"github.com/google/go-cmp/cmp"
)

var testEvents = []trace.Event{
	{Cat: "function", Dur: 1500, Name: "tokenize", Ph: "X", Ts: 0},
	{Cat: "function", Dur: 250.25, Name: "parse", Ph: "X", Pid: 1, Tid: 2, Ts: 1500},
}

func TestDocument(t *testing.T) {
	doc := trace.Document(testEvents)

	const want = `{"traceEvents" : [` +
		`{"cat" : "function", "dur" : 1500, "name" : "tokenize", "ph" : "X", "pid" : 0, "tid" : 0, "ts" : 0}, ` +
		`{"cat" : "function", "dur" : 250.2500, "name" : "parse", "ph" : "X", "pid" : 1, "tid" : 2, "ts" : 1500}` +
		`]}`
	if got := doc.JSON(); got != want {
		t.Errorf("JSON:\n got %#q\nwant %#q", got, want)
	}
}

func TestDocument_roundTrip(t *testing.T) {
	doc := trace.Document(testEvents)

	back, err := ast.Parse([]byte(doc.JSON()))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	events := back.Get("traceEvents")
	if got := ast.ArrayLen(events); got != len(testEvents) {
		t.Fatalf("ArrayLen: got %d, want %d", got, len(testEvents))
	}

	// Each event carries its seven fields in insertion order.
	wantKeys := []string{"cat", "dur", "name", "ph", "pid", "tid", "ts"}
	for i := range testEvents {
		obj, ok := ast.ArrayAt(events, i).(*ast.Object)
		if !ok {
			t.Fatalf("Event %d is %v, want object", i, ast.ArrayAt(events, i))
		}
		var keys []string
		for _, m := range obj.Members {
			keys = append(keys, m.Key)
		}
		if diff := cmp.Diff(wantKeys, keys); diff != "" {
			t.Errorf("Event %d keys: (-want, +got)\n%s", i, diff)
		}
	}

	first := ast.ArrayAt(events, 0).(*ast.Object)
	if got := first.Get("name"); got != ast.String("tokenize") {
		t.Errorf("Get name: got %v, want tokenize", got)
	}
}

func TestRecorder(t *testing.T) {
	var r trace.Recorder

	done := r.Section("outer")
	r.Section("inner")()
	done()

	secs := r.Sections()
	if len(secs) != 2 {
		t.Fatalf("Sections: got %d, want 2", len(secs))
	}
	// Sections are recorded in completion order.
	if secs[0].Name != "inner" || secs[1].Name != "outer" {
		t.Errorf("Section order: got %q, %q; want inner, outer", secs[0].Name, secs[1].Name)
	}

	evts := r.Events()
	if len(evts) != 2 {
		t.Fatalf("Events: got %d, want 2", len(evts))
	}
	for i, e := range evts {
		if e.Cat != "function" || e.Ph != "X" {
			t.Errorf("Event %d: cat=%q ph=%q, want function/X", i, e.Cat, e.Ph)
		}
	}
	if evts[0].Ts != 0 {
		t.Errorf("First event ts: got %v, want 0", evts[0].Ts)
	}
	if want := evts[0].Dur; evts[1].Ts != want {
		t.Errorf("Second event ts: got %v, want %v", evts[1].Ts, want)
	}
}

func TestRecorder_writeFile(t *testing.T) {
	var r trace.Recorder
	func() {
		defer r.Section("work")()
		time.Sleep(time.Millisecond)
	}()

	path := filepath.Join(t.TempDir(), "trace.json")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read trace: %v", err)
	}
	doc, err := ast.Parse(data)
	if err != nil {
		t.Fatalf("Parse trace: unexpected error: %v", err)
	}
	events := doc.Get("traceEvents")
	if got := ast.ArrayLen(events); got != 1 {
		t.Fatalf("traceEvents length: got %d, want 1", got)
	}
	evt := ast.ArrayAt(events, 0).(*ast.Object)
	if dur, ok := evt.Get("dur").(ast.Number); !ok || dur.Float() <= 0 {
		t.Errorf("dur: got %v, want a positive number", evt.Get("dur"))
	}
}
