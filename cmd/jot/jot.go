// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Program jot parses a JSON document of coordinate pairs, reports on its
// structure, and optionally computes haversine distances and writes a Chrome
// trace of the run.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/creachadair/jot/ast"
	"github.com/creachadair/jot/haversine"
	"github.com/creachadair/jot/trace"
	"github.com/fatih/color"
	"github.com/pkg/profile"
)

type options struct {
	Input      string   `arg:"positional,required" help:"input JSON file"`
	Print      bool     `arg:"-p,--print" help:"print the parsed tree"`
	Get        []string `arg:"-g,--get,separate" help:"look up this key in the tree (repeatable)"`
	Pairs      bool     `arg:"--pairs" help:"compute haversine distances over the pairs array"`
	TraceFile  string   `arg:"--trace" help:"write a trace of this run to this file"`
	CPUProfile string   `arg:"--cpuprofile" help:"write a CPU profile to this directory"`
}

func (options) Description() string {
	return "Parse a JSON document and evaluate its coordinate pairs."
}

var (
	printErr  = color.New(color.FgRed).FprintfFunc()
	printOK   = color.New(color.FgGreen).FprintfFunc()
	printNote = color.New(color.FgCyan).FprintfFunc()
)

func main() {
	var opts options
	arg.MustParse(&opts)

	if opts.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.CPUProfile)).Stop()
	}

	var rec trace.Recorder
	if err := run(&rec, opts); err != nil {
		printErr(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report(&rec)
	if opts.TraceFile != "" {
		if err := rec.WriteFile(opts.TraceFile); err != nil {
			printErr(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printNote(os.Stdout, "Trace written to %s\n", opts.TraceFile)
	}
}

func run(rec *trace.Recorder, opts options) error {
	total := rec.Section("total")
	defer total()

	// The whole document must be resident before parsing begins.
	read := rec.Section("read")
	data, err := os.ReadFile(opts.Input)
	read()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	parse := rec.Section("parse")
	obj, err := ast.Parse(data)
	parse()
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	printOK(os.Stdout, "Parsed %d top-level members from %d bytes\n", obj.Len(), len(data))

	if opts.Print {
		fmt.Println(obj.JSON())
	}
	for _, key := range opts.Get {
		v := obj.Get(key)
		if v == nil {
			fmt.Printf("%s: (not found)\n", key)
		} else {
			fmt.Printf("%s: %s\n", key, ast.JSON(v))
		}
	}

	if opts.Pairs {
		eval := rec.Section("pairs")
		pairs, err := haversine.Pairs(obj)
		if err != nil {
			eval()
			return err
		}
		sum := haversine.Sum(pairs, haversine.EarthRadius)
		avg := haversine.Average(pairs, haversine.EarthRadius)
		eval()
		fmt.Printf("Pairs: %d\nTotal distance: %.4f km\nAverage distance: %.4f km\n",
			len(pairs), sum, avg)
	}
	return nil
}

// report prints the recorded sections with their share of the total, in the
// manner of a profiler summary. The last section is the whole run.
func report(rec *trace.Recorder) {
	secs := rec.Sections()
	if len(secs) == 0 {
		return
	}
	total := secs[len(secs)-1].Elapsed
	printNote(os.Stdout, "[Profile]\n")
	for _, s := range secs {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(s.Elapsed) / float64(total)
		}
		fmt.Printf("  %-8s %10.3f ms  (%.1f%%)\n",
			s.Name, float64(s.Elapsed.Microseconds())/1000, pct)
	}
}
