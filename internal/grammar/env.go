// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package grammar

import (
	"strings"

	"github.com/veil-sh/veil/internal/span"
)

func init() {
	Register(span.KindEnv, extractEnv)
}

// extractEnv scans line-oriented KEY=VALUE text. A line matches when it has
// optional leading whitespace, an optional "export " prefix, a key of
// [A-Za-z0-9_.-]+, optional whitespace, and an equals sign. The candidate
// value is everything after the first "=" to the end of the line, verbatim —
// further "=" characters belong to the value. Lines that do not match are
// skipped silently.
func extractEnv(text string) []span.Candidate {
	var out []span.Candidate
	offset := 0
	for offset <= len(text) {
		line := text[offset:]
		next := len(text) + 1
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			next = offset + nl + 1
		}
		// CRLF line endings: the carriage return terminates the line and is
		// not part of the value.
		line = strings.TrimSuffix(line, "\r")

		if value, ok := matchEnvLine(line); ok {
			lineEnd := offset + len(line)
			out = append(out, span.Candidate{
				Span: span.Span{Start: lineEnd - len(value), End: lineEnd},
				Raw:  value,
				Kind: span.KindEnv,
			})
		}
		offset = next
	}
	return out
}

// matchEnvLine returns the value portion of an assignment line, or false if
// the line does not match the grammar or the value is empty/whitespace-only.
func matchEnvLine(line string) (string, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if strings.HasPrefix(line[i:], "export ") {
		i += len("export ")
	}
	keyStart := i
	for i < len(line) && isEnvKeyByte(line[i]) {
		i++
	}
	if i == keyStart {
		return "", false
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || line[i] != '=' {
		return "", false
	}
	value := line[i+1:]
	if emptyValue(value) {
		return "", false
	}
	return value, true
}

func isEnvKeyByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '.', b == '-':
		return true
	}
	return false
}
