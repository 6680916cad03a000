// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/span"
)

// Sink is the rendering collaborator. It owns the decoration resource; the
// engine only tells it what to paint and when to rebuild.
type Sink interface {
	// RecreateStyle rebuilds the decoration resource for a new mask color.
	RecreateStyle(colorSpec string) error
	// SetMask replaces the displayed mask set for the document.
	SetMask(doc document.Document, mask []span.Span) error
}

// Apply pushes one instruction to a sink, rebuilding the style first when
// the instruction demands it. This is the only place engine output turns
// into side effects.
func Apply(s Sink, doc document.Document, in Instruction) error {
	if in.RecreateStyle {
		if err := s.RecreateStyle(in.MaskColor); err != nil {
			return fmt.Errorf("recreate mask style: %w", err)
		}
	}
	if err := s.SetMask(doc, in.Mask); err != nil {
		return fmt.Errorf("set mask: %w", err)
	}
	return nil
}
