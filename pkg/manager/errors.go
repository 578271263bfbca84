// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package manager

import "errors"

var (
	// ErrEmptySchema is returned by New when the schema declares no options.
	ErrEmptySchema = errors.New("schema declares no options")

	// ErrNotInitialized is returned when a value accessor is called before
	// Initialize has completed.
	ErrNotInitialized = errors.New("configuration manager not initialized")

	// ErrAlreadyInitialized is returned by Initialize on an already
	// initialized manager. Initialization is terminal for the lifetime of
	// the instance.
	ErrAlreadyInitialized = errors.New("configuration manager already initialized")

	// ErrAlreadyRegistered is returned by Registry.Register when the name
	// is taken.
	ErrAlreadyRegistered = errors.New("configuration name already registered")
)
