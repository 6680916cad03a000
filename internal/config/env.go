// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognized as overrides.
const (
	envEnable    = "VEIL_ENABLE"
	envMaskColor = "VEIL_MASK_COLOR"
)

// readEnv collects override values from the process environment, falling
// back to a dir/.env file read with godotenv. The .env file is read, not
// loaded: veil inspects dotenv files for a living and must not inject their
// contents into its own environment.
func readEnv(dir string) map[string]string {
	out := make(map[string]string)

	fileVals, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err == nil {
		for _, key := range []string{envEnable, envMaskColor} {
			if v, ok := fileVals[key]; ok {
				out[key] = v
			}
		}
	}
	for _, key := range []string{envEnable, envMaskColor} {
		if v, ok := os.LookupEnv(key); ok {
			out[key] = v
		}
	}
	return out
}

func parseBool(v string) (bool, error) {
	return strconv.ParseBool(v)
}
