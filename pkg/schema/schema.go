// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/configcraft/configcraft/pkg/values"
)

type optionKey struct {
	section string
	option  string
}

// Schema is an ordered collection of blueprints, keyed by (section, option).
// Build it fully before handing it to a manager; it is not safe to add
// blueprints while other goroutines read it.
type Schema struct {
	order []*Blueprint
	index map[optionKey]*Blueprint
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{index: make(map[optionKey]*Blueprint)}
}

// Add appends a blueprint to the schema. The (section, option) pair must be
// unique.
func (s *Schema) Add(b *Blueprint) error {
	k := optionKey{section: b.Section(), option: b.Option()}
	if _, exists := s.index[k]; exists {
		return &DuplicateOptionError{Section: b.Section(), Option: b.Option()}
	}
	s.order = append(s.order, b)
	s.index[k] = b
	return nil
}

// Lookup returns the blueprint for a (section, option) pair.
func (s *Schema) Lookup(section, option string) (*Blueprint, bool) {
	b, ok := s.index[optionKey{section: section, option: option}]
	return b, ok
}

// Validate checks a value against the declared blueprint for the pair.
func (s *Schema) Validate(section, option string, v values.Value) error {
	b, ok := s.Lookup(section, option)
	if !ok {
		return &UnknownOptionError{Section: section, Option: option}
	}
	return b.Validate(v)
}

// Blueprints returns the blueprints in declaration order. The slice is a
// copy; the blueprints themselves are shared and immutable. This is the
// read-only iteration documentation generators consume.
func (s *Schema) Blueprints() []*Blueprint {
	out := make([]*Blueprint, len(s.order))
	copy(out, s.order)
	return out
}

// Sections returns the distinct section names in first-appearance order.
func (s *Schema) Sections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range s.order {
		if !seen[b.Section()] {
			seen[b.Section()] = true
			out = append(out, b.Section())
		}
	}
	return out
}

// Len returns the number of declared options.
func (s *Schema) Len() int {
	return len(s.order)
}
