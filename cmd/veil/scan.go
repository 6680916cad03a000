// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/grammar"
	"github.com/veil-sh/veil/internal/identity"
	"github.com/veil-sh/veil/internal/render"
	"github.com/veil-sh/veil/internal/span"
)

// Scan-specific flag values.
var (
	scanJSON       bool
	scanShowValues bool
	scanLanguage   string
)

// scanCmd lists the sensitive-value spans a file would get masked.
var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "List the sensitive value spans in a file",
	Long: `Scan a configuration file and list every value span veil would mask.
Values are redacted in the listing unless --show-values is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "emit machine-readable JSON")
	scanCmd.Flags().BoolVar(&scanShowValues, "show-values", false, "print raw values instead of redacting them")
	scanCmd.Flags().StringVar(&scanLanguage, "language", "", "override language detection (dotenv, json)")
}

// scanRecord is the JSON structure emitted per candidate with --json.
type scanRecord struct {
	Identity  string `json:"identity"`
	Kind      string `json:"kind"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndCol    int    `json:"end_col"`
	Value     string `json:"value,omitempty"`
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path
	if err != nil {
		return &exitCodeError{code: ExitReadFailure, msg: fmt.Sprintf("veil: cannot read %q (%v)", path, err)}
	}

	buf := document.NewBuffer(path, scanLanguage, string(data))
	kind := grammar.Detect(buf.FileName(), buf.LanguageID())
	if kind == span.KindNone {
		slog.Warn("no grammar for file, nothing to scan", "file", path)
	}
	candidates := grammar.Extract(buf.Text(), kind)

	if scanJSON {
		records := make([]scanRecord, len(candidates))
		for i, c := range candidates {
			start := buf.PositionAt(c.Span.Start)
			end := buf.PositionAt(c.Span.End)
			records[i] = scanRecord{
				Identity:  identity.Key(buf.ID(), c.Span, buf),
				Kind:      string(c.Kind),
				StartLine: start.Line,
				StartCol:  start.Col,
				EndCol:    end.Col,
			}
			if scanShowValues {
				records[i].Value = c.Raw
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	loc := color.New(color.FgCyan)
	for _, c := range candidates {
		start := buf.PositionAt(c.Span.Start)
		end := buf.PositionAt(c.Span.End)
		value := render.Redact(c.Raw)
		if scanShowValues {
			value = c.Raw
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			loc.Sprintf("%s:%d:%d-%d", path, start.Line+1, start.Col+1, end.Col+1),
			c.Kind, value)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d sensitive value(s)\n", len(candidates))
	return nil
}
