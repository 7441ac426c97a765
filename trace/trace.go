// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package trace records named timing sections and exports them as a Chrome
// Trace Event document built on the ast tree model.
package trace

import (
	"fmt"
	"os"
	"time"

	"github.com/creachadair/jot/ast"
)

// An Event is a single completed ("X" phase) trace event. Durations and
// timestamps are in microseconds, per the trace event format.
type Event struct {
	Cat  string  // event category
	Dur  float64 // duration in microseconds
	Name string  // the name of the section
	Ph   string  // event phase
	Pid  int     // process ID
	Tid  int     // thread ID
	Ts   float64 // start timestamp in microseconds
}

// Object renders e as a tree object. The key order is fixed so that the
// serialized form is stable: cat, dur, name, ph, pid, tid, ts.
func (e Event) Object() *ast.Object {
	o := new(ast.Object)
	o.Add("cat", e.Cat)
	o.Add("dur", e.Dur)
	o.Add("name", e.Name)
	o.Add("ph", e.Ph)
	o.Add("pid", e.Pid)
	o.Add("tid", e.Tid)
	o.Add("ts", e.Ts)
	return o
}

// Document assembles the given events into a trace document: a root object
// whose single "traceEvents" member holds the array of event objects.
func Document(events []Event) *ast.Object {
	arr := make(ast.Array, len(events))
	for i, e := range events {
		arr[i] = e.Object()
	}
	root := new(ast.Object)
	root.Add("traceEvents", arr)
	return root
}

// A Section is a named region of execution with its measured duration.
type Section struct {
	Name    string
	Elapsed time.Duration
}

// A Recorder collects timed sections of a single run.  It is not safe for
// concurrent use; the tools built on it are synchronous throughout.
type Recorder struct {
	sections []Section
}

// Section begins timing a region with the given name and returns a function
// that ends it. The usual pattern is:
//
//	defer r.Section("parse")()
func (r *Recorder) Section(name string) func() {
	start := time.Now()
	return func() {
		r.sections = append(r.sections, Section{Name: name, Elapsed: time.Since(start)})
	}
}

// Sections returns the sections recorded so far, in completion order.
func (r *Recorder) Sections() []Section { return r.sections }

// Events converts the recorded sections into trace events.  Each section
// becomes a complete event in the "function" category; timestamps are laid
// out end to end from zero, matching the order of completion.
func (r *Recorder) Events() []Event {
	var base float64
	evts := make([]Event, len(r.sections))
	for i, s := range r.sections {
		dur := float64(s.Elapsed) / float64(time.Microsecond)
		evts[i] = Event{
			Cat:  "function",
			Dur:  dur,
			Name: s.Name,
			Ph:   "X",
			Ts:   base,
		}
		base += dur
	}
	return evts
}

// WriteFile serializes the recorded sections as a trace document and writes
// it to path as UTF-8 text.
func (r *Recorder) WriteFile(path string) error {
	doc := Document(r.Events())
	if err := os.WriteFile(path, []byte(doc.JSON()), 0644); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}
