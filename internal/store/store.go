// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package store holds the set of span identities currently revealed.
//
// The store lives for the editing session and is never persisted. It is
// owned by a single engine instance and mutated only from the engine's
// serialized event handling, so it carries no locking. Every operation is
// total: nothing here can fail.
package store

import (
	"strings"

	"github.com/veil-sh/veil/internal/identity"
)

// Store is the per-session set of revealed span identities.
type Store struct {
	revealed map[string]struct{}
}

// New returns an empty store.
func New() *Store {
	return &Store{revealed: make(map[string]struct{})}
}

// Reveal marks an identity as revealed. Idempotent.
func (s *Store) Reveal(id string) {
	s.revealed[id] = struct{}{}
}

// IsRevealed reports whether an identity has been revealed.
func (s *Store) IsRevealed(id string) bool {
	_, ok := s.revealed[id]
	return ok
}

// ClearAll empties the store. Backs the explicit hide-all command.
func (s *Store) ClearAll() {
	s.revealed = make(map[string]struct{})
}

// ClearDocument removes every identity belonging to docID. Called when a
// document closes; without it the store would grow for the whole session.
func (s *Store) ClearDocument(docID string) {
	prefix := identity.DocumentPrefix(docID)
	for id := range s.revealed {
		if strings.HasPrefix(id, prefix) {
			delete(s.revealed, id)
		}
	}
}

// Len returns the number of revealed identities.
func (s *Store) Len() int {
	return len(s.revealed)
}
