// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_WriteRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.ini")
	store, err := NewLocalStore(path, "")
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	ctx := context.Background()
	text := "[net]\nport = 8080\n"
	require.NoError(t, store.Write(ctx, text))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, text, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLocalStore_ReadMissingFile(t *testing.T) {
	t.Parallel()

	store, err := NewLocalStore(filepath.Join(t.TempDir(), "app.ini"), "")
	require.NoError(t, err)

	_, err = store.Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_Exists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.ini")
	store, err := NewLocalStore(path, "")
	require.NoError(t, err)

	ctx := context.Background()
	exists, err := store.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Write(ctx, "[net]\nport = 1\n"))

	exists, err = store.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStore_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "app.ini")
	store, err := NewLocalStore(path, "")
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "[net]\nport = 1\n"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLocalStore_Encoding(t *testing.T) {
	t.Parallel()

	t.Run("latin1 round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.ini")
		store, err := NewLocalStore(path, "latin1")
		require.NoError(t, err)

		ctx := context.Background()
		text := "[app]\nlabel = \"café\"\n"
		require.NoError(t, store.Write(ctx, text))

		// On disk the e-acute must be the single latin1 byte, not UTF-8.
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "caf\xe9")

		got, err := store.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	})

	t.Run("unknown charset is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewLocalStore(filepath.Join(t.TempDir(), "app.ini"), "no-such-charset")
		assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	})
}

func TestLocalStore_NoLockFileLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.ini")
	store, err := NewLocalStore(path, "")
	require.NoError(t, err)

	require.NoError(t, store.Write(context.Background(), "[net]\nport = 1\n"))

	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_OverwriteReplacesContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.ini")
	store, err := NewLocalStore(path, "")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "[net]\nport = 8080\nhosts = [\"a\", \"b\"]\n"))
	require.NoError(t, store.Write(ctx, "[net]\nport = 1\n"))

	got, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[net]\nport = 1\n", got)
}
