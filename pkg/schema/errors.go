// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/configcraft/configcraft/pkg/values"
)

// InvalidBlueprintError is returned when a blueprint declaration is
// self-contradictory, for example a default value outside the accepted kinds.
type InvalidBlueprintError struct {
	Section string
	Option  string
	Err     error
}

func (e *InvalidBlueprintError) Error() string {
	return fmt.Sprintf("invalid blueprint for option %q in section %q: %v", e.Option, e.Section, e.Err)
}

func (e *InvalidBlueprintError) Unwrap() error {
	return e.Err
}

// DuplicateOptionError is returned when a (section, option) pair is declared
// twice in one schema.
type DuplicateOptionError struct {
	Section string
	Option  string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %q in section %q is already declared", e.Option, e.Section)
}

// UnknownOptionError is returned when a (section, option) pair is not
// declared in the schema.
type UnknownOptionError struct {
	Section string
	Option  string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("option %q in section %q does not exist", e.Option, e.Section)
}

// TypeMismatchError is returned when a value's kind is not accepted by the
// option, either for the value itself or for an item inside a container.
type TypeMismatchError struct {
	Section string
	Option  string
	Got     values.Kind
	Want    values.KindSet
	// Detail names the offending container item, empty for top-level values.
	Detail string
}

func (e *TypeMismatchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid value type for %s of option %q in section %q: got %s, want %s",
			e.Detail, e.Option, e.Section, e.Got, e.Want)
	}
	return fmt.Sprintf("invalid value type for option %q in section %q: got %s, want %s",
		e.Option, e.Section, e.Got, e.Want)
}

// OutOfRangeError is returned when a numeric value violates the declared
// minimum or maximum.
type OutOfRangeError struct {
	Section string
	Option  string
	Value   float64
	Limit   float64
	// LimitName is "minimum" or "maximum".
	LimitName string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value out of range for option %q in section %q: the %s is %v but got %v",
		e.Option, e.Section, e.LimitName, e.Limit, e.Value)
}

// PatternError is returned when a text value matches none of the declared
// patterns.
type PatternError struct {
	Section string
	Option  string
	Value   string
	// Labels are the human-readable names of the declared patterns.
	Labels []string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid value format for option %q in section %q: %q matches none of the expected formats (%s)",
		e.Option, e.Section, e.Value, joinLabels(e.Labels))
}

func joinLabels(labels []string) string {
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ", "
		}
		out += l
	}
	return out
}
