// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package span defines the core domain types for veil.
package span

// Span is a half-open byte interval [Start, End) into a document text
// snapshot. Spans are recomputed on every rescan; stable identity across
// rescans is derived separately (see internal/identity).
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset falls within the span, inclusive of both
// bounds. Callers that need the end-exclusive caret rule handle that
// themselves (see internal/classify).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// Intersects reports whether the two spans overlap or touch. A selection
// that merely touches a span's trailing edge counts as intersecting.
func (s Span) Intersects(o Span) bool {
	return o.Start <= s.End && o.End >= s.Start
}

// Position is a zero-based line/column location within a document.
// Columns count bytes from the start of the line.
type Position struct {
	Line int
	Col  int
}

// FileKind selects the extraction grammar applied to a document.
type FileKind string

const (
	// KindNone means no grammar applies; extraction yields no candidates.
	KindNone FileKind = ""
	// KindEnv is the line-oriented KEY=VALUE grammar.
	KindEnv FileKind = "env"
	// KindJSON is the flat "key": "value" string-pair grammar.
	KindJSON FileKind = "json"
)

// Candidate is a sensitive value discovered by one extraction pass.
// Candidates are rebuilt fresh on every rescan and never mutated.
type Candidate struct {
	Span Span
	Raw  string // source text of the value, escapes undecoded
	Kind FileKind
}

// Selection is a user selection in the active document, expressed as byte
// offsets. A caret is a selection whose Start and End coincide. Active is
// the cursor end of the selection.
type Selection struct {
	Start  int
	End    int
	Active int
}

// Caret returns an empty selection with the cursor at offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset, Active: offset}
}

// IsEmpty reports whether the selection is a plain caret.
func (s Selection) IsEmpty() bool { return s.Start == s.End }

// Cause describes what triggered a selection change.
type Cause int

const (
	// CauseUnknown covers programmatic selection changes with no attributed
	// source: session restore, file reopen, undo positioning.
	CauseUnknown Cause = iota
	CauseMouse
	CauseKeyboard
	// CauseCommand is a selection moved by an explicit editor command.
	CauseCommand
)

// AllowsReveal reports whether a selection change with this cause may flip
// spans from hidden to revealed. Unknown causation never reveals, so
// restored sessions and programmatic cursor moves keep values masked.
func (c Cause) AllowsReveal() bool {
	switch c {
	case CauseMouse, CauseKeyboard, CauseCommand:
		return true
	default:
		return false
	}
}

// String returns the cause name for logging.
func (c Cause) String() string {
	switch c {
	case CauseMouse:
		return "mouse"
	case CauseKeyboard:
		return "keyboard"
	case CauseCommand:
		return "command"
	default:
		return "unknown"
	}
}
