// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jot implements a lexical scanner for a subset of JSON held
// entirely in memory.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over a byte buffer.
// Construct a scanner from the complete input and call its Next method to
// iterate over the tokens:
//
//	s := jot.NewScanner(data)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next reports false when the input is exhausted, or when the input does not
// begin with a valid token. Use Err to distinguish the two cases:
//
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// The grammar accepted here is deliberately narrower than standard JSON:
// string escape sequences hold a string open but are not decoded, and numbers
// are captured greedily and validated only at conversion. See the ast
// subpackage for the parser and tree model built on this scanner.
package jot
