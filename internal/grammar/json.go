// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package grammar

import (
	"github.com/veil-sh/veil/internal/span"
)

func init() {
	Register(span.KindJSON, extractJSON)
}

// extractJSON scans for flat "key": "value" string pairs, left to right,
// non-overlapping. The key is any run of non-quote bytes; the value runs
// until the first unescaped quote, with a backslash escaping whatever byte
// follows it. The candidate span covers exactly the bytes between the
// value's quotes. Values that are themselves objects, arrays, or numbers are
// never matched — only string-valued leaves.
//
// On a failed match the scan resumes one byte past the quote that opened the
// attempt, so a stray quote cannot hide a later well-formed pair.
func extractJSON(text string) []span.Candidate {
	var out []span.Candidate
	i := 0
	for i < len(text) {
		open := indexByteFrom(text, i, '"')
		if open < 0 {
			break
		}
		valueStart, valueEnd, ok := matchJSONPair(text, open)
		if !ok {
			i = open + 1
			continue
		}
		raw := text[valueStart:valueEnd]
		if !emptyValue(raw) {
			out = append(out, span.Candidate{
				Span: span.Span{Start: valueStart, End: valueEnd},
				Raw:  raw,
				Kind: span.KindJSON,
			})
		}
		i = valueEnd + 1
	}
	return out
}

// matchJSONPair attempts to match `"key" : "value"` with the key's opening
// quote at open. It returns the byte bounds of the value (quotes excluded).
func matchJSONPair(text string, open int) (valueStart, valueEnd int, ok bool) {
	keyEnd := indexByteFrom(text, open+1, '"')
	if keyEnd < 0 {
		return 0, 0, false
	}
	i := skipSpace(text, keyEnd+1)
	if i >= len(text) || text[i] != ':' {
		return 0, 0, false
	}
	i = skipSpace(text, i+1)
	if i >= len(text) || text[i] != '"' {
		return 0, 0, false
	}
	valueStart = i + 1
	j := valueStart
	for j < len(text) {
		switch text[j] {
		case '\\':
			j += 2
		case '"':
			return valueStart, j, true
		default:
			j++
		}
	}
	return 0, 0, false
}

func indexByteFrom(s string, from int, b byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}
