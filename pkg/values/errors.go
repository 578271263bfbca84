// SPDX-FileCopyrightText: Copyright 2026 The configcraft Authors
// SPDX-License-Identifier: Apache-2.0

package values

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is the cause of decode failures where the literal text
	// does not follow the grammar.
	ErrMalformed = errors.New("malformed literal")

	// ErrKindMismatch is the cause of decode failures where the literal is
	// well formed but its kind is not accepted by the caller.
	ErrKindMismatch = errors.New("kind not accepted")
)

// DecodeError describes why a literal failed to decode.
type DecodeError struct {
	// Offset is the byte offset into the literal where decoding stopped.
	Offset int
	// Reason is a human-readable description of the failure.
	Reason string
	// Got is the decoded kind for kind-mismatch failures.
	Got Kind
	// Want is the accepted kind set for kind-mismatch failures.
	Want KindSet
	// Err is ErrMalformed or ErrKindMismatch.
	Err error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrKindMismatch) {
		return fmt.Sprintf("literal decodes to %s but the option accepts %s", e.Got, e.Want)
	}
	return fmt.Sprintf("malformed literal at offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newMalformedError(offset int, format string, args ...any) *DecodeError {
	return &DecodeError{
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
		Err:    ErrMalformed,
	}
}

func newKindMismatchError(got Kind, want KindSet) *DecodeError {
	return &DecodeError{
		Got:  got,
		Want: want,
		Err:  ErrKindMismatch,
	}
}
