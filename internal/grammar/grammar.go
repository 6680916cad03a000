// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package grammar extracts candidate sensitive-value spans from document
// text. Each supported file kind registers an extraction function; unknown
// kinds yield no candidates.
package grammar

import (
	"fmt"

	"github.com/veil-sh/veil/internal/span"
)

// ExtractFunc produces candidates for one file kind. Implementations must be
// pure functions of the input text, deterministic, and return candidates in
// left-to-right text order.
type ExtractFunc func(text string) []span.Candidate

var registry = make(map[span.FileKind]ExtractFunc)

// Register adds an extraction function for a file kind.
// It panics if the kind is already registered.
func Register(kind span.FileKind, fn ExtractFunc) {
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("grammar already registered: %s", kind))
	}
	registry[kind] = fn
}

// Extract runs the grammar for kind against text. A kind with no registered
// grammar (including KindNone) yields nil, which is not an error: documents
// outside the supported kinds are simply never masked.
func Extract(text string, kind span.FileKind) []span.Candidate {
	fn := registry[kind]
	if fn == nil {
		return nil
	}
	return fn(text)
}

// emptyValue reports whether raw contains no non-whitespace byte. Candidates
// with empty or whitespace-only values are dropped: there is nothing worth
// masking and a zero-width decoration would swallow the cursor.
func emptyValue(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			return false
		}
	}
	return true
}
