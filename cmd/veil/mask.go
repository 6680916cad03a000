// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veil-sh/veil/internal/config"
	"github.com/veil-sh/veil/internal/document"
	"github.com/veil-sh/veil/internal/engine"
	"github.com/veil-sh/veil/internal/render"
	"github.com/veil-sh/veil/internal/span"
)

// Mask-specific flag values.
var (
	maskReveal   []string
	maskPlain    bool
	maskColor    string
	maskLanguage string
)

// maskCmd renders a file with its sensitive values masked.
var maskCmd = &cobra.Command{
	Use:   "mask <file>",
	Short: "Render a file with sensitive values masked",
	Long: `Render a configuration file to stdout with every sensitive value
painted over. --reveal LINE:COL simulates a click at that position
(1-based), revealing the value under it, the same way a mouse caret
reveals values in an editor.`,
	Args: cobra.ExactArgs(1),
	RunE: runMask,
}

func init() {
	maskCmd.Flags().StringArrayVar(&maskReveal, "reveal", nil, "reveal the value at LINE:COL (repeatable)")
	maskCmd.Flags().BoolVar(&maskPlain, "plain", false, "replace masked values with asterisks instead of ANSI paint")
	maskCmd.Flags().StringVar(&maskColor, "color", "", "mask color (#RRGGBB[AA] or theme identifier)")
	maskCmd.Flags().StringVar(&maskLanguage, "language", "", "override language detection (dotenv, json)")
}

func runMask(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path
	if err != nil {
		return &exitCodeError{code: ExitReadFailure, msg: fmt.Sprintf("veil: cannot read %q (%v)", path, err)}
	}

	dir := filepath.Dir(path)
	file, err := config.Load(dir)
	if err != nil {
		return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("veil: bad %s (%v)", config.FileName, err)}
	}
	cfg := config.Resolve(file, dir)
	if maskColor != "" {
		cfg.MaskColor = maskColor
	}

	buf := document.NewBuffer(path, maskLanguage, string(data))
	eng := engine.New(cfg)
	in := eng.Handle(engine.Activate{Doc: buf})

	for _, at := range maskReveal {
		offset, err := revealOffset(buf, at)
		if err != nil {
			return &exitCodeError{code: ExitInvalidArgs, msg: fmt.Sprintf("veil: %v", err)}
		}
		in = eng.Handle(engine.ChangeSelection{
			Selections: []span.Selection{span.Caret(offset)},
			Cause:      span.CauseMouse,
		})
	}

	sink := render.New(cmd.OutOrStdout(), cfg.MaskColor, maskPlain)
	return engine.Apply(sink, buf, in)
}

// revealOffset converts a 1-based "LINE:COL" argument to a byte offset.
func revealOffset(buf *document.Buffer, at string) (int, error) {
	lineStr, colStr, ok := strings.Cut(at, ":")
	if !ok {
		return 0, fmt.Errorf("bad --reveal %q: want LINE:COL", at)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return 0, fmt.Errorf("bad --reveal %q: want LINE:COL", at)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return 0, fmt.Errorf("bad --reveal %q: want LINE:COL", at)
	}
	return buf.OffsetAt(span.Position{Line: line - 1, Col: col - 1}), nil
}
