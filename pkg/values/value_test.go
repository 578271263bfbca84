// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSet(t *testing.T) {
	t.Parallel()

	s := NewKindSet(KindInteger, KindNull)
	assert.True(t, s.Contains(KindInteger))
	assert.True(t, s.Contains(KindNull))
	assert.False(t, s.Contains(KindText))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Null, Integer", s.String())

	assert.True(t, KindSet{}.Empty())
	assert.False(t, s.Empty())

	// With returns a new set, the receiver is unchanged.
	wider := s.With(KindText)
	assert.True(t, wider.Contains(KindText))
	assert.False(t, s.Contains(KindText))

	assert.Equal(t, 7, AllKinds().Len())
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	text, ok := Text("a").AsText()
	require.True(t, ok)
	assert.Equal(t, "a", text)

	_, ok = Integer(1).AsText()
	assert.False(t, ok)

	n, ok := Integer(7).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 7.0, n)

	n, ok = Decimal(2.5).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 2.5, n)

	_, ok = Text("x").AsNumber()
	assert.False(t, ok)
}

func TestValue_DictBehaviour(t *testing.T) {
	t.Parallel()

	d := Dict(Pair("a", Integer(1)), Pair("b", Integer(2)), Pair("a", Integer(3)))
	assert.Equal(t, 2, d.Len())

	v, ok := d.Lookup("a")
	require.True(t, ok)
	assert.True(t, Integer(3).Equal(v))

	_, ok = d.Lookup("missing")
	assert.False(t, ok)

	entries := d.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, List(Integer(1), Text("a")).Equal(List(Integer(1), Text("a"))))
	assert.False(t, List(Integer(1)).Equal(List(Integer(1), Integer(2))))
	assert.False(t, Integer(1).Equal(Decimal(1.0)), "integer and decimal are distinct kinds")
	assert.False(t, Null().Equal(Text("")))

	// Dict equality is order-sensitive.
	a := Dict(Pair("x", Integer(1)), Pair("y", Integer(2)))
	b := Dict(Pair("y", Integer(2)), Pair("x", Integer(1)))
	assert.False(t, a.Equal(b))
}

func TestValue_ImmutableContainers(t *testing.T) {
	t.Parallel()

	items := []Value{Integer(1)}
	v := List(items...)
	items[0] = Integer(99)
	assert.True(t, Integer(1).Equal(v.Items()[0]))

	got := v.Items()
	got[0] = Integer(42)
	assert.True(t, Integer(1).Equal(v.Items()[0]))
}
