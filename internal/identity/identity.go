// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package identity derives the stable reveal-tracking key for a span.
//
// Identity is line/column based rather than offset based on purpose: an edit
// on an unrelated line shifts every later byte offset but leaves the span's
// line and column bounds untouched, so a value the user already revealed
// stays revealed across incidental edits. The flip side is documented
// behavior, not a bug: an edit that moves a revealed value's line or column
// produces a new identity, and the value reverts to hidden.
package identity

import (
	"fmt"

	"github.com/veil-sh/veil/internal/span"
)

// Mapper converts a byte offset into a line/column position. The document
// collaborator owns the mapping.
type Mapper interface {
	PositionAt(offset int) span.Position
}

// Key formats the identity for a span within a document:
//
//	docID::startLine:startCol-endCol
//
// Two candidates with the same key in two different rescans are the same
// logical span, even if the surrounding text changed.
func Key(docID string, sp span.Span, m Mapper) string {
	start := m.PositionAt(sp.Start)
	end := m.PositionAt(sp.End)
	return fmt.Sprintf("%s::%d:%d-%d", docID, start.Line, start.Col, end.Col)
}

// DocumentPrefix returns the prefix shared by every identity belonging to a
// document, used for close-time eviction.
func DocumentPrefix(docID string) string {
	return docID + "::"
}
