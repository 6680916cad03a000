// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/span"
)

// maskString is the fixed-width replacement for redacted values in listings.
// Fixed width so output never leaks the value's length.
const maskString = "*******"

// Renderer writes a document to w with masked spans painted or replaced.
// It implements engine.Sink.
type Renderer struct {
	w     io.Writer
	style *Style
	// plain replaces masked spans with asterisks instead of ANSI paint,
	// for pipes and terminals without color support.
	plain bool
}

// New returns a renderer writing to w with the given ColorSpec.
func New(w io.Writer, colorSpec string, plain bool) *Renderer {
	return &Renderer{w: w, style: NewStyle(colorSpec), plain: plain}
}

// RecreateStyle rebuilds the decoration style for a new color.
func (r *Renderer) RecreateStyle(colorSpec string) error {
	r.style = NewStyle(colorSpec)
	return nil
}

// SetMask renders the whole document, painting every masked span. Spans
// arrive left to right and non-overlapping, straight from an extraction
// pass over the same snapshot.
func (r *Renderer) SetMask(doc document.Document, mask []span.Span) error {
	text := doc.Text()
	var sb strings.Builder
	prev := 0
	for _, sp := range mask {
		if sp.Start < prev || sp.End > len(text) {
			continue
		}
		sb.WriteString(text[prev:sp.Start])
		if r.plain {
			sb.WriteString(maskString)
		} else {
			sb.WriteString(r.style.Paint(text[sp.Start:sp.End]))
		}
		prev = sp.End
	}
	sb.WriteString(text[prev:])
	if _, err := io.WriteString(r.w, sb.String()); err != nil {
		return fmt.Errorf("write rendered document: %w", err)
	}
	return nil
}

// Redact replaces a raw value with the fixed mask string for listings and
// log output. Values never appear verbatim unless the user asks for them.
func Redact(_ string) string {
	return maskString
}
