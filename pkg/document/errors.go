// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
)

var (
	errStrayLine           = errors.New("line is neither a section header, a comment, nor an assignment")
	errUnterminatedLiteral = errors.New("literal is not terminated before the end of the file")
)

// ParseError reports a fatal problem in the configuration text, carrying
// enough context to locate the offending entry.
type ParseError struct {
	Section string
	Option  string
	// Line is the 1-based line number where the entry starts.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Option != "":
		return fmt.Sprintf("line %d, option %q in section %q: %v", e.Line, e.Option, e.Section, e.Err)
	case e.Section != "":
		return fmt.Sprintf("line %d in section %q: %v", e.Line, e.Section, e.Err)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
