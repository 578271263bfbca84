// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package versions

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) { //nolint:paralleltest // Modifies global variables
	origVersion := Version
	origCommit := Commit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		Commit = origCommit
		BuildDate = origBuildDate
	}()

	t.Run("dev version is derived from commit", func(t *testing.T) { //nolint:paralleltest
		Version = "dev"
		Commit = "abc123def456789"
		BuildDate = unknownStr

		got := GetVersionInfo()
		assert.Equal(t, "build-abc123de", got.Version, "commit is truncated to 8 characters")
		assert.Equal(t, "abc123def456789", got.Commit)
		assert.Equal(t, unknownStr, got.BuildDate)
	})

	t.Run("dev version with short commit", func(t *testing.T) { //nolint:paralleltest
		Version = "dev"
		Commit = "short"
		BuildDate = unknownStr

		got := GetVersionInfo()
		assert.Equal(t, "build-short", got.Version)
	})

	t.Run("release version passes through", func(t *testing.T) { //nolint:paralleltest
		Version = "v1.2.3"
		Commit = "abc123def456789"
		BuildDate = "2024-01-15T10:30:00Z"

		got := GetVersionInfo()
		assert.Equal(t, "v1.2.3", got.Version)
		assert.Equal(t, "2024-01-15 10:30:00 UTC", got.BuildDate, "RFC3339 build dates are reformatted")
		assert.Equal(t, runtime.Version(), got.GoVersion)
		assert.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), got.Platform)
	})

	t.Run("unparseable build date is kept verbatim", func(t *testing.T) { //nolint:paralleltest
		Version = "v2.0.0"
		Commit = "def456"
		BuildDate = "not-a-date"

		got := GetVersionInfo()
		assert.Equal(t, "not-a-date", got.BuildDate)
	})

	t.Run("dev build always produces a build tag", func(t *testing.T) { //nolint:paralleltest
		Version = "dev"
		Commit = unknownStr
		BuildDate = unknownStr

		got := GetVersionInfo()
		assert.True(t, strings.HasPrefix(got.Version, "build-"), "got %q", got.Version)
	})
}
