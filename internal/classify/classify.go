// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package classify decides which candidate spans a user interaction reveals.
package classify

import (
	"github.com/veil-sh/veil/internal/span"
)

// Target pairs a candidate span with its resolved identity.
type Target struct {
	Span span.Span
	ID   string
}

// Classify returns the identities that the given selections reveal.
//
// When allowReveal is false the result is always empty — this is the only
// mechanism keeping programmatic changes (typing, tab switches, initial
// load, session restore) from revealing values the user never touched.
func Classify(targets []Target, selections []span.Selection, allowReveal bool) map[string]struct{} {
	if !allowReveal || len(targets) == 0 || len(selections) == 0 {
		return nil
	}
	revealed := make(map[string]struct{})
	for _, t := range targets {
		for _, sel := range selections {
			if Reveals(t.Span, sel) {
				revealed[t.ID] = struct{}{}
				break
			}
		}
	}
	return revealed
}

// Reveals reports whether a single selection reveals a span.
//
// A non-empty selection reveals when its cursor point sits within the span
// or the selected range intersects the span at all, trailing edge included.
//
// A plain caret reveals only strictly inside the span: a caret exactly at
// the span's end offset is what a click in the whitespace right of a short
// value produces, and that is clicking empty space, not the value.
func Reveals(sp span.Span, sel span.Selection) bool {
	if sel.IsEmpty() {
		return sp.Contains(sel.Active) && sel.Active != sp.End
	}
	return sp.Contains(sel.Active) || sp.Intersects(span.Span{Start: sel.Start, End: sel.End})
}
