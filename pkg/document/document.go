// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package document holds the in-memory configuration state of one profile:
// the mapping from (section, option) to its current value, kept consistent
// with the schema at all times.
package document

import (
	"github.com/configcraft/configcraft/pkg/logger"
	"github.com/configcraft/configcraft/pkg/schema"
	"github.com/configcraft/configcraft/pkg/values"
)

// UnknownKeyPolicy controls what happens to entries found in a file that are
// not declared in the schema.
type UnknownKeyPolicy int

const (
	// UnknownKeyIgnore silently drops undeclared entries, keeping files
	// forward-compatible with schemas that no longer declare them.
	UnknownKeyIgnore UnknownKeyPolicy = iota
	// UnknownKeyWarn drops undeclared entries but logs each one.
	UnknownKeyWarn
)

type optionKey struct {
	section string
	option  string
}

// Document maps every declared (section, option) pair to its current value.
// After construction it holds exactly one entry per blueprint, never more,
// never fewer. Documents are not safe for concurrent use; the owning manager
// serializes access.
type Document struct {
	schema *schema.Schema
	data   map[optionKey]values.Value
}

// BuildFromDefaults materializes a document holding every blueprint's
// default value.
func BuildFromDefaults(s *schema.Schema) *Document {
	d := &Document{
		schema: s,
		data:   make(map[optionKey]values.Value, s.Len()),
	}
	for _, b := range s.Blueprints() {
		d.data[optionKey{b.Section(), b.Option()}] = b.Default()
	}
	return d
}

// BuildFromText parses raw configuration text against the schema. Options
// missing from the text are healed with their blueprint default. Entries not
// declared in the schema are handled per policy and never fatal. A literal
// that fails to decode or validate is fatal and reported with its
// section/option/line context.
func BuildFromText(s *schema.Schema, text string, policy UnknownKeyPolicy) (*Document, error) {
	assignments, err := scanAssignments(text)
	if err != nil {
		return nil, err
	}

	parsed := make(map[optionKey]values.Value)
	for _, a := range assignments {
		b, ok := s.Lookup(a.section, a.option)
		if !ok {
			if policy == UnknownKeyWarn {
				logger.Warnw("ignoring undeclared configuration entry",
					"section", a.section, "option", a.option, "line", a.line)
			}
			continue
		}
		v, err := values.Decode(a.literal, b.Kinds())
		if err != nil {
			return nil, &ParseError{Section: a.section, Option: a.option, Line: a.line, Err: err}
		}
		if err := b.Validate(v); err != nil {
			return nil, &ParseError{Section: a.section, Option: a.option, Line: a.line, Err: err}
		}
		parsed[optionKey{a.section, a.option}] = v
	}

	d := &Document{
		schema: s,
		data:   make(map[optionKey]values.Value, s.Len()),
	}
	for _, b := range s.Blueprints() {
		k := optionKey{b.Section(), b.Option()}
		if v, ok := parsed[k]; ok {
			d.data[k] = v
		} else {
			d.data[k] = b.Default()
		}
	}
	return d, nil
}

// Get returns the current value for a declared option.
func (d *Document) Get(section, option string) (values.Value, error) {
	v, ok := d.data[optionKey{section, option}]
	if !ok {
		return values.Value{}, &schema.UnknownOptionError{Section: section, Option: option}
	}
	return v, nil
}

// Set validates the value against the schema and replaces the stored value.
// On any error the document is left unchanged.
func (d *Document) Set(section, option string, v values.Value) error {
	if err := d.schema.Validate(section, option, v); err != nil {
		return err
	}
	d.data[optionKey{section, option}] = v
	return nil
}

// Len returns the number of stored options.
func (d *Document) Len() int {
	return len(d.data)
}

// Schema returns the schema the document was built against.
func (d *Document) Schema() *schema.Schema {
	return d.schema
}
