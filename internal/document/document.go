// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package document provides the engine's view of an open document: its
// text, identity, and offset↔position mapping.
package document

import (
	"sort"

	"github.com/google/uuid"

	"github.com/veil-sh/veil/internal/span"
)

// Document is the editor collaborator the engine reads from. Identities are
// opaque, globally unique, and stable across edits; a document closed and
// reopened gets a fresh identity, never the old one.
type Document interface {
	ID() string
	Text() string
	FileName() string
	LanguageID() string
	PositionAt(offset int) span.Position
}

// Buffer is an in-memory Document. Each Buffer gets a UUID-based identity
// at construction, so reopening the same file yields a distinct identity
// space and starts fully masked.
type Buffer struct {
	id         string
	fileName   string
	languageID string
	text       string
	lineStarts []int
}

// NewBuffer creates a buffer over text with a fresh identity.
func NewBuffer(fileName, languageID, text string) *Buffer {
	b := &Buffer{
		id:         uuid.NewString(),
		fileName:   fileName,
		languageID: languageID,
	}
	b.SetText(text)
	return b
}

// ID returns the buffer's unique identity.
func (b *Buffer) ID() string { return b.id }

// Text returns the current text snapshot.
func (b *Buffer) Text() string { return b.text }

// FileName returns the name the buffer was opened with.
func (b *Buffer) FileName() string { return b.fileName }

// LanguageID returns the language identifier, possibly empty.
func (b *Buffer) LanguageID() string { return b.languageID }

// SetText replaces the buffer contents, keeping the identity. Models an
// edit: the host applies the change and then notifies the engine.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// PositionAt converts a byte offset to a zero-based line/column position.
// Offsets outside [0, len(text)] are clamped.
func (b *Buffer) PositionAt(offset int) span.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.text) {
		offset = len(b.text)
	}
	// First line start strictly greater than offset; the line is the one
	// before it.
	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
	return span.Position{Line: line, Col: offset - b.lineStarts[line]}
}

// OffsetAt converts a zero-based line/column position back to a byte
// offset, clamping to the document bounds.
func (b *Buffer) OffsetAt(pos span.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(b.lineStarts) {
		return len(b.text)
	}
	offset := b.lineStarts[pos.Line] + pos.Col
	end := len(b.text)
	if pos.Line+1 < len(b.lineStarts) {
		end = b.lineStarts[pos.Line+1] - 1
	}
	if offset > end {
		offset = end
	}
	return offset
}
