// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/configcraft/configcraft/pkg/schema"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	m, err := New(newTestSchema(t))
	require.NoError(t, err)

	require.NoError(t, r.Register("app", m))

	got, ok := r.Lookup("app")
	require.True(t, ok)
	assert.Same(t, m, got)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	err = r.Register("app", m)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	s := newTestSchema(t)

	first, err := r.GetOrCreate("app", s)
	require.NoError(t, err)

	second, err := r.GetOrCreate("app", s)
	require.NoError(t, err)
	assert.Same(t, first, second, "same name must map to one shared instance")

	_, err = r.GetOrCreate("empty", schema.New())
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestRegistry_GetOrCreateConcurrent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	s := newTestSchema(t)

	managers := make([]*Manager, 8)
	var wg sync.WaitGroup
	for i := range managers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := r.GetOrCreate("app", s)
			assert.NoError(t, err)
			managers[i] = m
		}(i)
	}
	wg.Wait()

	for _, m := range managers[1:] {
		assert.Same(t, managers[0], m)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	s := newTestSchema(t)

	for _, name := range []string{"c", "a", "b"} {
		_, err := r.GetOrCreate(name, s)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}
