// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package config handles .veil.yaml configuration files and VEIL_*
// environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veil-sh/veil/internal/engine"
)

// FileName is the expected config file name in a working directory.
const FileName = ".veil.yaml"

// File represents the contents of a .veil.yaml file. Unset fields fall
// back to the engine defaults.
type File struct {
	Enable    *bool  `yaml:"enable,omitempty"`
	MaskColor string `yaml:"mask_color,omitempty"`
}

// Load reads the .veil.yaml file from the given directory.
// If the file does not exist, it returns a zero-value File and nil error.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // user-provided directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Resolve merges file values, environment overrides, and defaults into an
// engine configuration. Precedence, lowest to highest: engine defaults,
// .veil.yaml, VEIL_* variables (process environment or dir/.env).
// Malformed values are ignored rather than failing the pass.
func Resolve(f *File, dir string) engine.Config {
	cfg := engine.DefaultConfig()
	if f != nil {
		if f.Enable != nil {
			cfg.Enabled = *f.Enable
		}
		if f.MaskColor != "" {
			cfg.MaskColor = f.MaskColor
		}
	}

	env := readEnv(dir)
	if v, ok := env[envEnable]; ok {
		if b, err := parseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v, ok := env[envMaskColor]; ok && v != "" {
		cfg.MaskColor = v
	}
	return cfg
}
