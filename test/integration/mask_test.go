// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package integration contains end-to-end tests for veil.
//
// These tests build the veil binary and exercise it against fixture files,
// verifying masked rendering, reveal simulation, JSON scan output, and
// config handling through the real CLI surface.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoRoot returns the veil repository root directory.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// test/integration/mask_test.go -> repo root
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// buildBinary compiles veil into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "veil-test")
	cmd := exec.Command("go", "build", "-o", binary, "./cmd/veil") //nolint:gosec // test helper
	cmd.Dir = repoRoot(t)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build failed:\n%s", out)
	return binary
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, binary string, args ...string) (string, error) {
	t.Helper()
	out, err := exec.Command(binary, args...).Output() //nolint:gosec // test binary
	return string(out), err
}

func TestMask_EndToEnd(t *testing.T) {
	binary := buildBinary(t)
	dir := t.TempDir()
	path := writeFixture(t, dir, ".env", "API_KEY=abc123\nexport FOO=bar baz\n")

	out, err := run(t, binary, "mask", "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=*******\nexport FOO=*******\n", out)

	out, err = run(t, binary, "mask", "--plain", "--reveal", "1:10", path)
	require.NoError(t, err)
	assert.Contains(t, out, "API_KEY=abc123")
	assert.Contains(t, out, "FOO=*******")
}

func TestMask_Idempotent(t *testing.T) {
	binary := buildBinary(t)
	dir := t.TempDir()
	path := writeFixture(t, dir, "settings.json", `{"token": "s3cr3t", "empty": ""}`)

	first, err := run(t, binary, "mask", "--plain", path)
	require.NoError(t, err)
	second, err := run(t, binary, "mask", "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same input, same mask set")
	assert.NotContains(t, first, "s3cr3t")
}

func TestScan_JSONOutput(t *testing.T) {
	binary := buildBinary(t)
	dir := t.TempDir()
	path := writeFixture(t, dir, ".env", "TOKEN=secret\n")

	out, err := run(t, binary, "scan", "--json", path)
	require.NoError(t, err)

	var records []struct {
		Identity  string `json:"identity"`
		Kind      string `json:"kind"`
		StartLine int    `json:"start_line"`
		StartCol  int    `json:"start_col"`
		EndCol    int    `json:"end_col"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "env", records[0].Kind)
	assert.Equal(t, 0, records[0].StartLine)
	assert.Equal(t, 6, records[0].StartCol)
	assert.Equal(t, 12, records[0].EndCol)
}

func TestMask_ConfigDisables(t *testing.T) {
	binary := buildBinary(t)
	dir := t.TempDir()
	writeFixture(t, dir, ".veil.yaml", "enable: false\n")
	path := writeFixture(t, dir, ".env", "TOKEN=secret\n")

	out, err := run(t, binary, "mask", "--plain", path)
	require.NoError(t, err)
	assert.Equal(t, "TOKEN=secret\n", out)
}

func TestMask_MissingFileExitCode(t *testing.T) {
	binary := buildBinary(t)
	_, err := run(t, binary, "mask", filepath.Join(t.TempDir(), "absent.env"))
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
}
