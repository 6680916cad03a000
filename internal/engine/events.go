// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/span"
)

// Event is one host notification driving a reconciliation pass. The host
// delivers events strictly serialized; Handle runs each to completion
// before the next arrives.
type Event interface {
	event()
}

// Activate starts tracking a document. Fired on initial activation; never
// reveals.
type Activate struct {
	Doc document.Document
}

// SwitchDocument changes the active document on a tab switch. Never
// reveals; reveal state for the previous document stays in the store until
// that document closes.
type SwitchDocument struct {
	Doc document.Document
}

// ChangeText signals that the active document's text changed. The host
// mutates the document before sending this. Never reveals.
type ChangeText struct{}

// ChangeSelection carries the user's current selections and what caused
// them to move. Reveal is permitted only when the cause qualifies.
type ChangeSelection struct {
	Selections []span.Selection
	Cause      span.Cause
}

// CloseDocument evicts a document's reveal state. If the closed document
// was active, the engine goes idle until the next Activate/SwitchDocument.
type CloseDocument struct {
	DocID string
}

// ChangeConfig replaces the masking configuration. A mask-color change
// makes the resulting instruction demand a style rebuild from the sink.
type ChangeConfig struct {
	Config Config
}

// Toggle flips the global enabled flag and re-runs with no reveal.
type Toggle struct{}

// HideAll clears every revealed identity for every document, then re-runs
// with no reveal.
type HideAll struct{}

func (Activate) event()        {}
func (SwitchDocument) event()  {}
func (ChangeText) event()      {}
func (ChangeSelection) event() {}
func (CloseDocument) event()   {}
func (ChangeConfig) event()    {}
func (Toggle) event()          {}
func (HideAll) event()         {}
