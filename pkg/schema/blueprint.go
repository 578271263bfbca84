// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema declares the structure of a configuration file: which
// sections and options exist, which value kinds each option accepts, its
// default, and the extra validation rules applied to assigned values.
package schema

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/configcraft/configcraft/pkg/values"
)

// Pattern is a labelled regular expression used to validate text values. The
// label doubles as documentation in the generated file.
type Pattern struct {
	Label  string
	Regexp *regexp.Regexp
}

// Blueprint declares one configuration option. Blueprints are immutable once
// built and safe to share.
type Blueprint struct {
	section     string
	option      string
	kinds       values.KindSet
	itemKinds   values.KindSet
	description string
	def         values.Value
	min         *float64
	max         *float64
	patterns    []Pattern
}

// Option customizes a blueprint under construction.
type Option func(*Blueprint)

// WithDescription sets the option's documentation text.
func WithDescription(description string) Option {
	return func(b *Blueprint) {
		b.description = description
	}
}

// WithDefault sets the option's default value. Without it the default is null.
func WithDefault(v values.Value) Option {
	return func(b *Blueprint) {
		b.def = v
	}
}

// WithItemKinds restricts the kinds accepted for list items and dictionary
// values. Without it, items may be of any kind.
func WithItemKinds(kinds values.KindSet) Option {
	return func(b *Blueprint) {
		b.itemKinds = kinds
	}
}

// WithMinimum sets the lowest numeric value the option accepts.
func WithMinimum(minimum float64) Option {
	return func(b *Blueprint) {
		b.min = &minimum
	}
}

// WithMaximum sets the highest numeric value the option accepts.
func WithMaximum(maximum float64) Option {
	return func(b *Blueprint) {
		b.max = &maximum
	}
}

// WithPattern adds a labelled regular expression; text values must match at
// least one declared pattern.
func WithPattern(label string, expr string) Option {
	return func(b *Blueprint) {
		re, err := regexp.Compile(expr)
		if err != nil {
			// Surfaced by NewBlueprint through the deferred validation below.
			b.patterns = append(b.patterns, Pattern{Label: label})
			return
		}
		b.patterns = append(b.patterns, Pattern{Label: label, Regexp: re})
	}
}

// NewBlueprint builds and validates a blueprint. The default value must be
// compatible with every declared rule, so a schema full of blueprints is
// known-good before the first file is read.
func NewBlueprint(section, option string, kinds values.KindSet, opts ...Option) (*Blueprint, error) {
	b := &Blueprint{
		section:   strings.TrimSpace(section),
		option:    strings.TrimSpace(option),
		kinds:     kinds,
		itemKinds: values.AllKinds(),
		def:       values.Null(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.checkDeclaration(); err != nil {
		return nil, &InvalidBlueprintError{Section: b.section, Option: b.option, Err: err}
	}
	if err := b.Validate(b.def); err != nil {
		return nil, &InvalidBlueprintError{Section: b.section, Option: b.option, Err: err}
	}
	return b, nil
}

func (b *Blueprint) checkDeclaration() error {
	if b.section == "" {
		return errors.New("section name must not be empty")
	}
	if b.option == "" {
		return errors.New("option name must not be empty")
	}
	if b.kinds.Empty() {
		return errors.New("accepted kind set must not be empty")
	}
	if b.itemKinds.Empty() {
		return errors.New("item kind set must not be empty")
	}
	for _, p := range b.patterns {
		if p.Regexp == nil {
			return fmt.Errorf("pattern %q does not compile", p.Label)
		}
	}
	if b.min != nil && !isFinite(*b.min) {
		return errors.New("minimum must be a finite number")
	}
	if b.max != nil && !isFinite(*b.max) {
		return errors.New("maximum must be a finite number")
	}
	if b.min != nil && b.max != nil && *b.min > *b.max {
		return errors.New("minimum must not exceed maximum")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Section returns the section name.
func (b *Blueprint) Section() string {
	return b.section
}

// Option returns the option name.
func (b *Blueprint) Option() string {
	return b.option
}

// Kinds returns the accepted kind set.
func (b *Blueprint) Kinds() values.KindSet {
	return b.kinds
}

// ItemKinds returns the kind set accepted for container items.
func (b *Blueprint) ItemKinds() values.KindSet {
	return b.itemKinds
}

// Description returns the option's documentation text.
func (b *Blueprint) Description() string {
	return b.description
}

// Default returns the option's default value.
func (b *Blueprint) Default() values.Value {
	return b.def
}

// Minimum returns the declared lower bound, if any.
func (b *Blueprint) Minimum() (float64, bool) {
	if b.min == nil {
		return 0, false
	}
	return *b.min, true
}

// Maximum returns the declared upper bound, if any.
func (b *Blueprint) Maximum() (float64, bool) {
	if b.max == nil {
		return 0, false
	}
	return *b.max, true
}

// Patterns returns the declared text patterns.
func (b *Blueprint) Patterns() []Pattern {
	out := make([]Pattern, len(b.patterns))
	copy(out, b.patterns)
	return out
}

// Required reports whether the option must carry a value, which is the case
// exactly when null is not among the accepted kinds.
func (b *Blueprint) Required() bool {
	return !b.kinds.Contains(values.KindNull)
}

// Validate checks a value against every rule of the blueprint and returns the
// first violation found.
func (b *Blueprint) Validate(v values.Value) error {
	if !b.kinds.Contains(v.Kind()) {
		return &TypeMismatchError{Section: b.section, Option: b.option, Got: v.Kind(), Want: b.kinds}
	}
	switch v.Kind() {
	case values.KindList:
		for i, item := range v.Items() {
			if !b.itemKinds.Contains(item.Kind()) {
				return &TypeMismatchError{
					Section: b.section,
					Option:  b.option,
					Got:     item.Kind(),
					Want:    b.itemKinds,
					Detail:  fmt.Sprintf("list item %d", i),
				}
			}
		}
	case values.KindDict:
		for _, e := range v.Entries() {
			if !b.itemKinds.Contains(e.Value.Kind()) {
				return &TypeMismatchError{
					Section: b.section,
					Option:  b.option,
					Got:     e.Value.Kind(),
					Want:    b.itemKinds,
					Detail:  fmt.Sprintf("dictionary key %q", e.Key),
				}
			}
		}
	case values.KindDecimal:
		if f, _ := v.AsDecimal(); !isFinite(f) {
			return &TypeMismatchError{Section: b.section, Option: b.option, Got: v.Kind(), Want: b.kinds,
				Detail: "non-finite decimal"}
		}
	}
	if err := b.validateRange(v); err != nil {
		return err
	}
	return b.validatePatterns(v)
}

func (b *Blueprint) validateRange(v values.Value) error {
	n, ok := v.AsNumber()
	if !ok {
		return nil
	}
	if b.min != nil && n < *b.min {
		return &OutOfRangeError{Section: b.section, Option: b.option, Value: n, Limit: *b.min, LimitName: "minimum"}
	}
	if b.max != nil && n > *b.max {
		return &OutOfRangeError{Section: b.section, Option: b.option, Value: n, Limit: *b.max, LimitName: "maximum"}
	}
	return nil
}

func (b *Blueprint) validatePatterns(v values.Value) error {
	if len(b.patterns) == 0 {
		return nil
	}
	text, ok := v.AsText()
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(b.patterns))
	for _, p := range b.patterns {
		if p.Regexp.MatchString(text) {
			return nil
		}
		labels = append(labels, p.Label)
	}
	return &PatternError{Section: b.section, Option: b.option, Value: text, Labels: labels}
}
