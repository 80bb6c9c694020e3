// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
	"strings"
)

// CredentialsFile returns the path to the shared AWS credentials file. The
// AWS_SHARED_CREDENTIALS_FILE env variable overrides the default location,
// mirroring the resolution the AWS CLI itself performs.
func CredentialsFile() (string, error) {
	if p := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".aws", "credentials"), nil
}

// ConfigFile returns the path to the shared AWS config file, honoring the
// AWS_CONFIG_FILE env variable override.
func ConfigFile() (string, error) {
	if p := os.Getenv("AWS_CONFIG_FILE"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".aws", "config"), nil
}

// ParseScanDir resolves a directory spec to an absolute path. It returns an
// error if the fs entry does not exist, is empty or is not a directory.
func ParseScanDir(dir string) (string, error) {

	if dir == "" {
		return "", os.ErrInvalid
	}

	// If the path is relative, make it absolute against the CWD.
	if !strings.HasPrefix(dir, "/") && !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(cwd, dir)
	}

	// If the path is not a directory, return an error.
	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
