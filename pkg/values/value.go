// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package values

// Value is a tagged union over the seven supported kinds. Values are treated
// as immutable: constructors copy the slices they receive, and accessors for
// container kinds return fresh copies. Cycles are not constructible because a
// value can only be assembled from already-built values.
type Value struct {
	kind    Kind
	text    string
	integer int64
	decimal float64
	boolean bool
	list    []Value
	dict    []Entry
}

// Entry is one key/value pair of a Dict. Keys are always Text.
type Entry struct {
	Key   string
	Value Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer returns a 64-bit signed integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Decimal returns a double-precision decimal value.
func Decimal(f float64) Value {
	return Value{kind: KindDecimal, decimal: f}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// List returns an ordered list value holding the given items.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, list: copied}
}

// Dict returns a dictionary value holding the given entries in order.
// A repeated key keeps its first position and takes the last value, matching
// the decoder's behaviour for duplicate keys in a literal.
func Dict(entries ...Entry) Value {
	copied := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if i := entryIndex(copied, e.Key); i >= 0 {
			copied[i].Value = e.Value
			continue
		}
		copied = append(copied, e)
	}
	return Value{kind: KindDict, dict: copied}
}

// Pair builds a Dict entry.
func Pair(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

func entryIndex(entries []Entry, key string) int {
	for i := range entries {
		if entries[i].Key == key {
			return i
		}
	}
	return -1
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsText returns the text content. The second return is false when the value
// is not Text.
func (v Value) AsText() (string, bool) {
	return v.text, v.kind == KindText
}

// AsInteger returns the integer content.
func (v Value) AsInteger() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// AsDecimal returns the decimal content.
func (v Value) AsDecimal() (float64, bool) {
	return v.decimal, v.kind == KindDecimal
}

// AsBoolean returns the boolean content.
func (v Value) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// AsNumber returns the numeric content of an Integer or Decimal value as a
// float64. Used for range validation, where both numeric kinds share limits.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.integer), true
	case KindDecimal:
		return v.decimal, true
	default:
		return 0, false
	}
}

// Items returns a copy of the list items. Empty for non-list values.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	copied := make([]Value, len(v.list))
	copy(copied, v.list)
	return copied
}

// Entries returns a copy of the dictionary entries in insertion order.
// Empty for non-dict values.
func (v Value) Entries() []Entry {
	if v.kind != KindDict {
		return nil
	}
	copied := make([]Entry, len(v.dict))
	copy(copied, v.dict)
	return copied
}

// Lookup returns the value stored under key in a dictionary value.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindDict {
		return Value{}, false
	}
	if i := entryIndex(v.dict, key); i >= 0 {
		return v.dict[i].Value, true
	}
	return Value{}, false
}

// Len returns the number of items of a List or entries of a Dict, zero
// otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindDict:
		return len(v.dict)
	default:
		return 0
	}
}

// Equal reports deep equality of two values: same kind, same content, and for
// containers the same order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindText:
		return v.text == o.text
	case KindInteger:
		return v.integer == o.integer
	case KindDecimal:
		return v.decimal == o.decimal
	case KindBoolean:
		return v.boolean == o.boolean
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for i := range v.dict {
			if v.dict[i].Key != o.dict[i].Key || !v.dict[i].Value.Equal(o.dict[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the single-line canonical literal, mainly for debugging and
// log output. Null renders as the keyword so the value stays visible.
func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}
	return Encode(v)
}
