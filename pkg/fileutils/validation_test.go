// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package fileutils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/configcraft/configcraft/pkg/fileutils"
)

func TestValidateProfileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		profile     string
		expectError bool
		errorMsg    string
	}{
		{
			name:    "valid simple name",
			profile: "default",
		},
		{
			name:    "valid with hyphens",
			profile: "staging-eu",
		},
		{
			name:    "valid with underscores",
			profile: "local_dev",
		},
		{
			name:    "valid with dots",
			profile: "app.v2",
		},
		{
			name:    "valid alphanumeric",
			profile: "profile123",
		},
		{
			name:        "empty name",
			profile:     "",
			expectError: true,
			errorMsg:    "cannot be empty",
		},
		{
			name:        "path traversal",
			profile:     "../etc/passwd",
			expectError: true,
			errorMsg:    "path traversal",
		},
		{
			name:        "nested traversal",
			profile:     "a/../../b",
			expectError: true,
			errorMsg:    "path traversal",
		},
		{
			name:        "absolute path",
			profile:     "/etc/passwd",
			expectError: true,
		},
		{
			name:        "forward slash",
			profile:     "team/app",
			expectError: true,
		},
		{
			name:        "backslash",
			profile:     `team\app`,
			expectError: true,
		},
		{
			name:        "null byte",
			profile:     "app\x00",
			expectError: true,
		},
		{
			name:        "shell metacharacters",
			profile:     "app;rm",
			expectError: true,
		},
		{
			name:        "spaces",
			profile:     "my profile",
			expectError: true,
		},
		{
			name:        "too long",
			profile:     strings.Repeat("a", 101),
			expectError: true,
			errorMsg:    "too long",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := fileutils.ValidateProfileName(tt.profile)
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, fileutils.ErrInvalidProfileName)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
