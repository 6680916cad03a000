// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package engine drives reconciliation: on every host event it re-extracts
// candidate spans from the active document, lets qualifying interactions
// reveal spans, and emits the set of spans the sink must keep masked.
package engine

import (
	"log/slog"

	"github.com/veil-sh/veil/internal/classify"
	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/grammar"
	"github.com/veil-sh/veil/internal/identity"
	"github.com/veil-sh/veil/internal/span"
	"github.com/veil-sh/veil/internal/store"
)

// DefaultMaskColor is the theme-background identifier used when no mask
// color is configured. Painting values in the editor background makes them
// unreadable without changing layout.
const DefaultMaskColor = "editor.background"

// Config is the externally owned masking configuration, read-only to the
// engine. Changes arrive as ChangeConfig events.
type Config struct {
	// Enabled gates all masking. When false every pass emits an empty mask.
	Enabled bool
	// MaskColor is either a theme-color identifier or a literal
	// "#RRGGBB[AA]" string, distinguished by the leading "#".
	MaskColor string
}

// DefaultConfig returns the documented defaults: masking on, theme
// background color.
func DefaultConfig() Config {
	return Config{Enabled: true, MaskColor: DefaultMaskColor}
}

// Instruction is the outcome of one reconciliation pass. The engine has no
// side effects beyond its own store; the host applies the instruction to
// the rendering sink.
type Instruction struct {
	// Mask holds the spans to paint over, left to right. Everything not
	// listed renders normally.
	Mask []span.Span
	// RecreateStyle is set when the mask color changed; the sink must
	// rebuild its decoration resource before applying Mask.
	RecreateStyle bool
	// MaskColor is the color the sink should paint with.
	MaskColor string
	// Status is an informational message for the user, set only by the
	// explicit commands. Never an error: masking is best-effort.
	Status string
}

// Engine owns the reveal-state store and the active-document pointer. One
// engine tracks one active document at a time; reveal state for background
// documents stays in the store until they close.
//
// Engine is not safe for concurrent use. The host's serialized event
// delivery is the concurrency model: no two passes ever overlap.
type Engine struct {
	cfg    Config
	store  *store.Store
	active document.Document
}

// New returns an engine with the given configuration and an empty store.
// An empty mask color falls back to the default rather than failing.
func New(cfg Config) *Engine {
	if cfg.MaskColor == "" {
		cfg.MaskColor = DefaultMaskColor
	}
	return &Engine{cfg: cfg, store: store.New()}
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config { return e.cfg }

// Handle processes one event and returns the instruction for the sink.
// Handling is synchronous and idempotent: re-delivering an event with
// unchanged inputs yields the same mask set and store contents.
func (e *Engine) Handle(ev Event) Instruction {
	switch ev := ev.(type) {
	case Activate:
		e.active = ev.Doc
		return e.pass(false, nil, "")

	case SwitchDocument:
		e.active = ev.Doc
		return e.pass(false, nil, "")

	case ChangeText:
		return e.pass(false, nil, "")

	case ChangeSelection:
		slog.Debug("selection changed", "cause", ev.Cause, "selections", len(ev.Selections))
		return e.pass(ev.Cause.AllowsReveal(), ev.Selections, "")

	case CloseDocument:
		e.store.ClearDocument(ev.DocID)
		if e.active != nil && e.active.ID() == ev.DocID {
			e.active = nil
		}
		return e.pass(false, nil, "")

	case ChangeConfig:
		next := ev.Config
		if next.MaskColor == "" {
			next.MaskColor = DefaultMaskColor
		}
		recreate := next.MaskColor != e.cfg.MaskColor
		e.cfg = next
		in := e.pass(false, nil, "")
		in.RecreateStyle = recreate
		return in

	case Toggle:
		e.cfg.Enabled = !e.cfg.Enabled
		status := "value masking disabled"
		if e.cfg.Enabled {
			status = "value masking enabled"
		}
		return e.pass(false, nil, status)

	case HideAll:
		e.store.ClearAll()
		return e.pass(false, nil, "all values hidden")

	default:
		return e.pass(false, nil, "")
	}
}

// pass runs one full reconciliation: extract, classify, reveal, filter.
func (e *Engine) pass(allowReveal bool, selections []span.Selection, status string) Instruction {
	in := Instruction{MaskColor: e.cfg.MaskColor, Status: status}
	if e.active == nil || !e.cfg.Enabled {
		return in
	}

	kind := grammar.Detect(e.active.FileName(), e.active.LanguageID())
	candidates := grammar.Extract(e.active.Text(), kind)
	if len(candidates) == 0 {
		return in
	}

	targets := make([]classify.Target, len(candidates))
	for i, c := range candidates {
		targets[i] = classify.Target{
			Span: c.Span,
			ID:   identity.Key(e.active.ID(), c.Span, e.active),
		}
	}

	for id := range classify.Classify(targets, selections, allowReveal) {
		slog.Debug("revealing span", "identity", id)
		e.store.Reveal(id)
	}

	mask := make([]span.Span, 0, len(targets))
	for _, t := range targets {
		if !e.store.IsRevealed(t.ID) {
			mask = append(mask, t.Span)
		}
	}
	in.Mask = mask
	return in
}
