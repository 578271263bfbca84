// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package filestore persists configuration file text on disk. Writes are
// atomic and guarded by a sibling lock file so that concurrent processes
// never interleave partial writes.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/configcraft/configcraft/pkg/fileutils"
	"github.com/configcraft/configcraft/pkg/lockfile"
)

// lockTimeout is the maximum time to wait for a file lock
const lockTimeout = 1 * time.Second

// filePerm is the permission mode for configuration files. Configuration may
// hold credentials, so group/other access is withheld.
const filePerm os.FileMode = 0600

// ErrNotFound is returned by Read when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// ErrUnsupportedEncoding is returned when the requested character encoding is
// not registered with IANA or has no Go implementation.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store

// Store defines the interface for configuration text storage operations
type Store interface {
	// Read returns the full text of the stored configuration
	Read(ctx context.Context) (string, error)
	// Write replaces the stored configuration with the given text
	Write(ctx context.Context, text string) error
	// Exists checks whether a stored configuration is present
	Exists(ctx context.Context) (bool, error)
	// Path returns the location of the stored configuration
	Path() string
}

// LocalStore implements Store using the local file system
type LocalStore struct {
	path string
	enc  encoding.Encoding
}

// NewLocalStore creates a file-backed store for the given path. The encoding
// name is an IANA charset name ("UTF-8", "latin1", ...); an empty name means
// UTF-8. The parent directory is created if missing.
func NewLocalStore(path, encodingName string) (*LocalStore, error) {
	var enc encoding.Encoding
	if encodingName != "" {
		e, err := ianaindex.IANA.Encoding(encodingName)
		if err != nil || e == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encodingName)
		}
		enc = e
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create configuration directory: %w", err)
	}

	return &LocalStore{path: path, enc: enc}, nil
}

// Path returns the configuration file path.
func (s *LocalStore) Path() string {
	return s.path
}

// Exists reports whether the configuration file is present on disk.
func (s *LocalStore) Exists(_ context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat configuration file: %w", err)
	}
	return true, nil
}

// Read returns the decoded text of the configuration file. It holds a shared
// file lock for the duration of the read so a concurrent writer cannot be
// observed mid-replace.
func (s *LocalStore) Read(ctx context.Context) (string, error) {
	var text string
	err := s.withFileLock(ctx, true, func() error {
		data, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrNotFound, s.path)
			}
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
		if s.enc != nil {
			data, err = s.enc.NewDecoder().Bytes(data)
			if err != nil {
				return fmt.Errorf("failed to decode configuration file: %w", err)
			}
		}
		text = string(data)
		return nil
	})
	return text, err
}

// Write encodes the text and atomically replaces the configuration file while
// holding an exclusive file lock.
func (s *LocalStore) Write(ctx context.Context, text string) error {
	data := []byte(text)
	if s.enc != nil {
		encoded, err := s.enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("failed to encode configuration text: %w", err)
		}
		data = encoded
	}

	return s.withFileLock(ctx, false, func() error {
		if err := fileutils.AtomicWriteFile(s.path, data, filePerm); err != nil {
			return fmt.Errorf("failed to write configuration file: %w", err)
		}
		return nil
	})
}

// withFileLock executes fn while holding the sibling lock file. A separate
// lock file keeps locking portable across platforms and atomic renames.
func (s *LocalStore) withFileLock(ctx context.Context, shared bool, fn func() error) error {
	lockPath := s.path + ".lock"
	fileLock := lockfile.NewTrackedLock(lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if shared {
		locked, err = fileLock.TryRLockContext(lockCtx, 100*time.Millisecond)
	} else {
		locked, err = fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	}
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout after %v", lockTimeout)
	}
	defer lockfile.ReleaseTrackedLock(lockPath, fileLock)

	return fn()
}
