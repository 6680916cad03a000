// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

// resetFlags resets package-level flag values and cobra flag state so tests
// do not contaminate each other.
func resetFlags() {
	verbose = false
	quiet = false
	noColor = false
	scanJSON = false
	scanShowValues = false
	scanLanguage = ""
	maskReveal = nil
	maskPlain = false
	maskColor = ""
	maskLanguage = ""

	for _, cmd := range []interface{ Flags() *pflag.FlagSet }{scanCmd, maskCmd} {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
		})
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeTestFile writes content under dir and returns the full path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
