// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package manager ties the configuration machinery together: it owns one
// profile's document, keeps it valid against the schema, and writes every
// change through to the backing file immediately.
package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/configcraft/configcraft/pkg/docheader"
	"github.com/configcraft/configcraft/pkg/document"
	"github.com/configcraft/configcraft/pkg/filestore"
	"github.com/configcraft/configcraft/pkg/fileutils"
	"github.com/configcraft/configcraft/pkg/schema"
	"github.com/configcraft/configcraft/pkg/values"
)

// defaultExtension is appended to the profile name to form the file name.
const defaultExtension = ".ini"

// Manager is the façade over schema, document, and file store for a single
// profile. All operations are safe for concurrent use; every read-modify-write
// sequence holds the instance mutex for its full duration, so two concurrent
// SetValue calls never interleave their file writes.
type Manager struct {
	mu sync.Mutex

	schema *schema.Schema
	gen    *docheader.Generator
	policy document.UnknownKeyPolicy
	ext    string

	// Set on Initialize.
	initialized  bool
	store        filestore.Store
	doc          *document.Document
	profile      string
	directory    string
	encodingName string
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithStore injects a pre-built store. Initialize then skips building a
// file-backed one; intended for tests and non-file backends.
func WithStore(store filestore.Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithUnknownKeyPolicy controls handling of file entries the schema does not
// declare. The default silently ignores them.
func WithUnknownKeyPolicy(policy document.UnknownKeyPolicy) Option {
	return func(m *Manager) {
		m.policy = policy
	}
}

// WithHeader overrides the generated file's first header line.
func WithHeader(header string) Option {
	return func(m *Manager) {
		m.gen.Header = header
	}
}

// WithDescription overrides the generated file's usage note.
func WithDescription(description string) Option {
	return func(m *Manager) {
		m.gen.Description = description
	}
}

// WithFileExtension overrides the ".ini" file extension. The extension must
// include the leading dot.
func WithFileExtension(ext string) Option {
	return func(m *Manager) {
		m.ext = ext
	}
}

// New builds a manager for the given schema. The schema must declare at
// least one option; an empty schema is always a programming error.
func New(s *schema.Schema, opts ...Option) (*Manager, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySchema
	}
	m := &Manager{
		schema: s,
		gen:    docheader.New(),
		ext:    defaultExtension,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Initialize binds the manager to <directory>/<profile><ext> and loads it.
// When the file exists its text is parsed and healed against the schema;
// otherwise a document of defaults is built. Either way the canonical
// rendering is written back, so generated and hand-edited files alike end up
// normalized. Initialization is terminal: a second call returns
// ErrAlreadyInitialized regardless of arguments.
func (m *Manager) Initialize(ctx context.Context, profile, directory, encodingName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return ErrAlreadyInitialized
	}
	if err := fileutils.ValidateProfileName(profile); err != nil {
		return err
	}

	store := m.store
	if store == nil {
		localStore, err := filestore.NewLocalStore(filepath.Join(directory, profile+m.ext), encodingName)
		if err != nil {
			return err
		}
		store = localStore
	}

	exists, err := store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for configuration file: %w", err)
	}

	var doc *document.Document
	if exists {
		text, err := store.Read(ctx)
		if err != nil {
			return fmt.Errorf("failed to read configuration: %w", err)
		}
		doc, err = document.BuildFromText(m.schema, text, m.policy)
		if err != nil {
			return err
		}
	} else {
		doc = document.BuildFromDefaults(m.schema)
	}

	// Write the canonical form back before exposing any state.
	if err := store.Write(ctx, renderDocument(m.gen, m.schema, doc)); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	m.store = store
	m.doc = doc
	m.profile = profile
	m.directory = directory
	m.encodingName = encodingName
	m.initialized = true
	return nil
}

// GetValue returns the current value of a declared option.
func (m *Manager) GetValue(section, option string) (values.Value, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return values.Value{}, fmt.Errorf("%w: GetValue(%q, %q)", ErrNotInitialized, section, option)
	}
	return m.doc.Get(section, option)
}

// SetValue validates and applies the new value, then immediately rewrites the
// whole file. A validation failure leaves both memory and file untouched. A
// write failure is returned but the in-memory update stands: memory is
// authoritative, persistence is best effort.
func (m *Manager) SetValue(ctx context.Context, section, option string, v values.Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("%w: SetValue(%q, %q)", ErrNotInitialized, section, option)
	}
	if err := m.doc.Set(section, option, v); err != nil {
		return err
	}
	if err := m.store.Write(ctx, renderDocument(m.gen, m.schema, m.doc)); err != nil {
		return fmt.Errorf("failed to persist configuration: %w", err)
	}
	return nil
}

// SetDescription replaces the usage note used for subsequently written files.
func (m *Manager) SetDescription(description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen.Description = description
}

// Path returns the backing file path, or "" before Initialize.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == nil {
		return ""
	}
	return m.store.Path()
}

// Profile returns the profile name set by Initialize.
func (m *Manager) Profile() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile
}

// Directory returns the configuration directory set by Initialize.
func (m *Manager) Directory() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.directory
}

// Encoding returns the IANA charset name set by Initialize; "" means UTF-8.
func (m *Manager) Encoding() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.encodingName
}

// Schema returns the schema the manager was built with.
func (m *Manager) Schema() *schema.Schema {
	return m.schema
}

func renderDocument(gen *docheader.Generator, s *schema.Schema, doc *document.Document) string {
	return gen.Render(s, func(section, option string) values.Value {
		v, err := doc.Get(section, option)
		if err != nil {
			// Documents hold one entry per blueprint, so this only
			// trips on a schema/document mismatch bug.
			return values.Null()
		}
		return v
	})
}
