// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package lockfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackedLock_AcquireAndRelease(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "config.ini.lock")

	lock := NewTrackedLock(lockPath)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.True(t, locked)

	_, err = os.Stat(lockPath)
	require.NoError(t, err, "lock file should exist while held")

	ReleaseTrackedLock(lockPath, lock)

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock file should be removed after last release")
}

func TestTrackedLock_FileKeptWhileOtherHoldersRemain(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "config.ini.lock")

	first := NewTrackedLock(lockPath)
	second := NewTrackedLock(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	locked, err := first.TryLockContext(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.True(t, locked)

	ReleaseTrackedLock(lockPath, first)

	// Second holder is still registered, so the file must survive.
	_, err = os.Stat(lockPath)
	assert.NoError(t, err)

	lockedAgain, err := second.TryLockContext(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.True(t, lockedAgain)

	ReleaseTrackedLock(lockPath, second)

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err))
}

func TestTrackedLock_ReleaseWithoutAcquire(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "config.ini.lock")
	lock := NewTrackedLock(lockPath)

	// Releasing a lock that was never acquired must not panic; the unlock
	// failure is logged and the tracking entry still goes away.
	ReleaseTrackedLock(lockPath, lock)
}
