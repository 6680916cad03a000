// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veil-sh/veil/internal/span"
)

// secret is the span [10,16) used throughout, standing in for a six-byte
// value like "secret".
var secret = span.Span{Start: 10, End: 16}

func TestReveals_Caret(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   bool
	}{
		{"inside", 12, true},
		{"at start", 10, true},
		{"just before end", 15, true},
		{"exactly at end is whitespace, not the value", 16, false},
		{"before span", 9, false},
		{"after span", 17, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reveals(secret, span.Caret(tt.offset)))
		})
	}
}

func TestReveals_NonEmptySelection(t *testing.T) {
	tests := []struct {
		name string
		sel  span.Selection
		want bool
	}{
		{"covers part of span", span.Selection{Start: 11, End: 13, Active: 13}, true},
		{"covers whole span", span.Selection{Start: 5, End: 20, Active: 5}, true},
		{"active inside span", span.Selection{Start: 12, End: 30, Active: 12}, true},
		{"touches trailing edge", span.Selection{Start: 16, End: 20, Active: 20}, true},
		{"touches leading edge", span.Selection{Start: 5, End: 10, Active: 5}, true},
		{"fully before", span.Selection{Start: 2, End: 8, Active: 8}, false},
		{"fully after", span.Selection{Start: 18, End: 25, Active: 25}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reveals(secret, tt.sel))
		})
	}
}

func TestClassify_DisallowedNeverReveals(t *testing.T) {
	targets := []Target{{Span: secret, ID: "doc::1:4-10"}}
	sels := []span.Selection{span.Caret(12)}

	assert.Empty(t, Classify(targets, sels, false))
}

func TestClassify_RevealsMatchingTargets(t *testing.T) {
	targets := []Target{
		{Span: span.Span{Start: 10, End: 16}, ID: "doc::1:4-10"},
		{Span: span.Span{Start: 30, End: 40}, ID: "doc::3:4-14"},
	}
	sels := []span.Selection{span.Caret(12)}

	got := Classify(targets, sels, true)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "doc::1:4-10")
}

func TestClassify_MultipleSelections(t *testing.T) {
	targets := []Target{
		{Span: span.Span{Start: 10, End: 16}, ID: "a"},
		{Span: span.Span{Start: 30, End: 40}, ID: "b"},
		{Span: span.Span{Start: 50, End: 60}, ID: "c"},
	}
	sels := []span.Selection{
		span.Caret(11),
		{Start: 28, End: 35, Active: 35},
	}

	got := Classify(targets, sels, true)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
}

func TestClassify_EmptyInputs(t *testing.T) {
	assert.Empty(t, Classify(nil, []span.Selection{span.Caret(1)}, true))
	assert.Empty(t, Classify([]Target{{Span: secret, ID: "x"}}, nil, true))
}
