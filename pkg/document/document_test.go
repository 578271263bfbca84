// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/configcraft/configcraft/pkg/logger"
	"github.com/configcraft/configcraft/pkg/schema"
	"github.com/configcraft/configcraft/pkg/values"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s := schema.New()

	port, err := schema.NewBlueprint("net", "port", values.NewKindSet(values.KindInteger),
		schema.WithDefault(values.Integer(8080)),
		schema.WithDescription("TCP port the server listens on."))
	require.NoError(t, err)
	require.NoError(t, s.Add(port))

	hosts, err := schema.NewBlueprint("net", "hosts", values.NewKindSet(values.KindList),
		schema.WithDefault(values.List(values.Text("localhost"))),
		schema.WithItemKinds(values.NewKindSet(values.KindText)))
	require.NoError(t, err)
	require.NoError(t, s.Add(hosts))

	label, err := schema.NewBlueprint("app", "label", values.NewKindSet(values.KindText, values.KindNull))
	require.NoError(t, err)
	require.NoError(t, s.Add(label))

	return s
}

func TestBuildFromDefaults(t *testing.T) {
	t.Parallel()

	s := testSchema(t)
	d := BuildFromDefaults(s)
	assert.Equal(t, 3, d.Len())

	v, err := d.Get("net", "port")
	require.NoError(t, err)
	assert.True(t, values.Integer(8080).Equal(v))

	v, err = d.Get("app", "label")
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestBuildFromText(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()
		text := `# configcraft - Version: 0.1.0

[net]
# TCP port the server listens on.
port = 9090

hosts = [
    "a.example",
    "b.example"
]

[app]
label = "prod"
`
		d, err := BuildFromText(testSchema(t), text, UnknownKeyIgnore)
		require.NoError(t, err)

		v, err := d.Get("net", "port")
		require.NoError(t, err)
		assert.True(t, values.Integer(9090).Equal(v))

		v, err = d.Get("net", "hosts")
		require.NoError(t, err)
		assert.True(t, values.List(values.Text("a.example"), values.Text("b.example")).Equal(v))

		v, err = d.Get("app", "label")
		require.NoError(t, err)
		assert.True(t, values.Text("prod").Equal(v))
	})

	t.Run("missing option heals to default", func(t *testing.T) {
		t.Parallel()
		d, err := BuildFromText(testSchema(t), "[net]\nport = 9090\n", UnknownKeyIgnore)
		require.NoError(t, err)

		v, err := d.Get("net", "hosts")
		require.NoError(t, err)
		assert.True(t, values.List(values.Text("localhost")).Equal(v))
	})

	t.Run("empty value is null", func(t *testing.T) {
		t.Parallel()
		d, err := BuildFromText(testSchema(t), "[app]\nlabel =\n", UnknownKeyIgnore)
		require.NoError(t, err)

		v, err := d.Get("app", "label")
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	})

	t.Run("undeclared entries are dropped", func(t *testing.T) {
		t.Parallel()
		text := "[net]\nport = 9090\nstale = true\n\n[gone]\nold = 1\n"
		d, err := BuildFromText(testSchema(t), text, UnknownKeyIgnore)
		require.NoError(t, err)
		assert.Equal(t, 3, d.Len())

		_, err = d.Get("gone", "old")
		var unknown *schema.UnknownOptionError
		assert.ErrorAs(t, err, &unknown)
	})

	t.Run("malformed literal is fatal with context", func(t *testing.T) {
		t.Parallel()
		_, err := BuildFromText(testSchema(t), "[net]\nport = True\n", UnknownKeyIgnore)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "net", parseErr.Section)
		assert.Equal(t, "port", parseErr.Option)
		assert.Equal(t, 2, parseErr.Line)
		assert.ErrorIs(t, err, values.ErrMalformed)
	})

	t.Run("wrong kind is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := BuildFromText(testSchema(t), "[net]\nport = \"9090\"\n", UnknownKeyIgnore)
		assert.ErrorIs(t, err, values.ErrKindMismatch)
	})

	t.Run("unterminated literal is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := BuildFromText(testSchema(t), "[net]\nhosts = [\n    \"a\",\n", UnknownKeyIgnore)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "hosts", parseErr.Option)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("stray line is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := BuildFromText(testSchema(t), "[net]\nwhat is this\n", UnknownKeyIgnore)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("semicolon comments are accepted", func(t *testing.T) {
		t.Parallel()
		_, err := BuildFromText(testSchema(t), "; legacy comment\n[net]\nport = 1\n", UnknownKeyIgnore)
		assert.NoError(t, err)
	})
}

func TestBuildFromText_WarnPolicy(t *testing.T) { //nolint:paralleltest // swaps the logger singleton
	original := logger.Get()
	defer logger.Set(original)

	var buf bytes.Buffer
	logger.Set(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := BuildFromText(testSchema(t), "[net]\nstale = 1\n", UnknownKeyWarn)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "undeclared")
	assert.Contains(t, buf.String(), "stale")
}

func TestDocument_Set(t *testing.T) {
	t.Parallel()

	t.Run("valid set replaces the value", func(t *testing.T) {
		t.Parallel()
		d := BuildFromDefaults(testSchema(t))
		require.NoError(t, d.Set("net", "port", values.Integer(9090)))

		v, err := d.Get("net", "port")
		require.NoError(t, err)
		assert.True(t, values.Integer(9090).Equal(v))
	})

	t.Run("invalid set leaves the document unchanged", func(t *testing.T) {
		t.Parallel()
		d := BuildFromDefaults(testSchema(t))

		err := d.Set("net", "port", values.Text("9090"))
		var mismatch *schema.TypeMismatchError
		require.ErrorAs(t, err, &mismatch)

		v, getErr := d.Get("net", "port")
		require.NoError(t, getErr)
		assert.True(t, values.Integer(8080).Equal(v))
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()
		d := BuildFromDefaults(testSchema(t))
		err := d.Set("net", "nope", values.Integer(1))
		var unknown *schema.UnknownOptionError
		assert.ErrorAs(t, err, &unknown)
	})
}
