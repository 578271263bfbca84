// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"sort"
	"sync"

	"github.com/configcraft/configcraft/pkg/schema"
)

// Registry maps configuration names to shared Manager instances. It replaces
// per-name singletons: the embedding application constructs one Registry and
// hands it to consumers, so instance identity is explicit and testable.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]*Manager
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		managers: make(map[string]*Manager),
	}
}

// Register adds a manager under a name. Names are single-assignment;
// registering a taken name returns ErrAlreadyRegistered.
func (r *Registry) Register(name string, m *Manager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.managers[name]; ok {
		return ErrAlreadyRegistered
	}
	r.managers[name] = m
	return nil
}

// Lookup returns the manager registered under name.
func (r *Registry) Lookup(name string) (*Manager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.managers[name]
	return m, ok
}

// GetOrCreate returns the manager registered under name, creating and
// registering a new one from the schema when absent. Concurrent callers for
// the same name always receive the same instance.
func (r *Registry) GetOrCreate(name string, s *schema.Schema, opts ...Option) (*Manager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[name]; ok {
		return m, nil
	}
	m, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	r.managers[name] = m
	return m, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
