// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package grammar

import (
	"path/filepath"
	"strings"

	"github.com/veil-sh/veil/internal/span"
)

// Detect maps a document's file name and language identifier to the grammar
// that applies to it. Dotenv-style names (".env", ".env.local", "dev.env")
// and the dotenv/properties language ids select the env grammar; a ".json"
// suffix or a json language id selects the JSON grammar. Everything else is
// KindNone and is never masked.
func Detect(fileName, languageID string) span.FileKind {
	switch strings.ToLower(languageID) {
	case "json", "jsonc":
		return span.KindJSON
	case "dotenv", "env", "properties":
		return span.KindEnv
	}

	base := strings.ToLower(filepath.Base(fileName))
	if strings.HasSuffix(base, ".json") {
		return span.KindJSON
	}
	if base == ".env" || strings.HasPrefix(base, ".env.") || strings.HasSuffix(base, ".env") {
		return span.KindEnv
	}
	return span.KindNone
}
