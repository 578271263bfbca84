// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package fileutils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrInvalidProfileName is returned when a profile name is not safe to embed
// in a file path.
var ErrInvalidProfileName = fmt.Errorf("invalid profile name")

var profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateProfileName validates a profile name before it is used to build a
// configuration file path. Profile names become file names, so anything that
// could escape the configuration directory is rejected: path traversal,
// absolute paths, separators, null bytes, and characters outside
// [a-zA-Z0-9._-].
func ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: profile name cannot be empty", ErrInvalidProfileName)
	}

	cleanName := filepath.Clean(name)
	if rel, err := filepath.Rel(".", cleanName); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%w: profile name contains path traversal", ErrInvalidProfileName)
	}
	if filepath.IsAbs(cleanName) {
		return fmt.Errorf("%w: profile name cannot be an absolute path", ErrInvalidProfileName)
	}
	if strings.Contains(name, "\x00") {
		return fmt.Errorf("%w: profile name contains null bytes", ErrInvalidProfileName)
	}
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w: profile name can only contain alphanumeric characters, dots, hyphens, and underscores",
			ErrInvalidProfileName)
	}
	if len(name) > 100 {
		return fmt.Errorf("%w: profile name too long (max 100 characters)", ErrInvalidProfileName)
	}
	return nil
}
