// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package lockfile tracks file locks by path so that lock files can be
// removed once the last holder in this process releases them. Locks guard
// configuration files against concurrent writers across processes; the
// tracking keeps configuration directories free of stale .lock files.
package lockfile

import (
	"os"
	"sync"

	"github.com/gofrs/flock"

	"github.com/configcraft/configcraft/pkg/logger"
)

var (
	trackedMu sync.Mutex
	// holders counts in-process users per lock path. The lock file is only
	// removed when the count drops to zero.
	holders = make(map[string]int)
)

// NewTrackedLock returns a file lock for the given path and registers the
// caller as a holder. Callers must pair every NewTrackedLock with a
// ReleaseTrackedLock for the same path.
func NewTrackedLock(path string) *flock.Flock {
	trackedMu.Lock()
	holders[path]++
	trackedMu.Unlock()
	return flock.New(path)
}

// ReleaseTrackedLock unlocks the given lock and deregisters the caller. When
// no other holder in this process remains, the lock file is removed on a
// best-effort basis.
func ReleaseTrackedLock(path string, lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		logger.Warnf("failed to unlock file %s: %v", path, err)
	}

	trackedMu.Lock()
	defer trackedMu.Unlock()

	holders[path]--
	if holders[path] > 0 {
		return
	}
	delete(holders, path)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warnf("failed to remove lock file %s: %v", path, err)
	}
}
