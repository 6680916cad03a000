// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/span"
)

func TestKey_Format(t *testing.T) {
	buf := document.NewBuffer(".env", "", "A=1\nTOKEN=secret\n")
	// "secret" sits on line 1, columns 6-12.
	key := Key("doc-1", span.Span{Start: 10, End: 16}, buf)
	assert.Equal(t, "doc-1::1:6-12", key)
}

func TestKey_StableAcrossUnrelatedEdits(t *testing.T) {
	before := document.NewBuffer(".env", "", "A=1\nTOKEN=secret\nB=2\n")
	after := document.NewBuffer(".env", "", "A=1\nTOKEN=secret\nB=2 changed\n")

	// Same line, same columns, different surrounding text: same identity.
	k1 := Key("doc", span.Span{Start: 10, End: 16}, before)
	k2 := Key("doc", span.Span{Start: 10, End: 16}, after)
	assert.Equal(t, k1, k2)
}

func TestKey_ShiftedLineIsNewIdentity(t *testing.T) {
	before := document.NewBuffer(".env", "", "TOKEN=secret\n")
	after := document.NewBuffer(".env", "", "# new first line\nTOKEN=secret\n")

	k1 := Key("doc", span.Span{Start: 6, End: 12}, before)
	k2 := Key("doc", span.Span{Start: 23, End: 29}, after)
	assert.NotEqual(t, k1, k2, "a line shift yields a new identity; the value reverts to hidden")
}

func TestKey_DistinctDocuments(t *testing.T) {
	buf := document.NewBuffer(".env", "", "TOKEN=secret\n")
	sp := span.Span{Start: 6, End: 12}
	assert.NotEqual(t, Key("doc-a", sp, buf), Key("doc-b", sp, buf))
}

func TestDocumentPrefix(t *testing.T) {
	assert.Equal(t, "doc-1::", DocumentPrefix("doc-1"))
	buf := document.NewBuffer(".env", "", "TOKEN=secret\n")
	key := Key("doc-1", span.Span{Start: 6, End: 12}, buf)
	assert.True(t, len(key) > len(DocumentPrefix("doc-1")))
	assert.Equal(t, DocumentPrefix("doc-1"), key[:len(DocumentPrefix("doc-1"))])
}
