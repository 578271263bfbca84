// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package values defines the typed value model shared by every configuration
// option and the codec between values and their textual literal form.
package values

import "strings"

// Kind identifies one of the seven value kinds a configuration option can hold.
type Kind int

// The closed set of supported kinds. Arbitrary user-defined types are not
// representable; validation happens against this enumeration at blueprint
// construction time rather than at runtime via reflection.
const (
	KindNull Kind = iota
	KindText
	KindInteger
	KindDecimal
	KindBoolean
	KindList
	KindDict

	numKinds
)

// String returns the human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindText:
		return "Text"
	case KindInteger:
		return "Integer"
	case KindDecimal:
		return "Decimal"
	case KindBoolean:
		return "Boolean"
	case KindList:
		return "List"
	case KindDict:
		return "Dictionary"
	default:
		return "Unknown"
	}
}

// KindSet is an immutable set of value kinds. The zero value is the empty set.
type KindSet struct {
	mask uint8
}

// NewKindSet builds a set containing the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// AllKinds returns the set containing every supported kind.
func AllKinds() KindSet {
	return NewKindSet(KindNull, KindText, KindInteger, KindDecimal, KindBoolean, KindList, KindDict)
}

// With returns a copy of the set with the given kind added.
func (s KindSet) With(k Kind) KindSet {
	if k < 0 || k >= numKinds {
		return s
	}
	return KindSet{mask: s.mask | 1<<uint(k)}
}

// Contains reports whether the set includes the given kind.
func (s KindSet) Contains(k Kind) bool {
	if k < 0 || k >= numKinds {
		return false
	}
	return s.mask&(1<<uint(k)) != 0
}

// Empty reports whether the set contains no kinds.
func (s KindSet) Empty() bool {
	return s.mask == 0
}

// Len returns the number of kinds in the set.
func (s KindSet) Len() int {
	n := 0
	for k := Kind(0); k < numKinds; k++ {
		if s.Contains(k) {
			n++
		}
	}
	return n
}

// Kinds returns the members of the set in declaration order.
func (s KindSet) Kinds() []Kind {
	kinds := make([]Kind, 0, s.Len())
	for k := Kind(0); k < numKinds; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String returns a comma-separated list of the member kind labels.
func (s KindSet) String() string {
	labels := make([]string, 0, s.Len())
	for _, k := range s.Kinds() {
		labels = append(labels, k.String())
	}
	return strings.Join(labels, ", ")
}
