// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
)

// A DuplicateValueError is returned by Given when the same value
// occurs at two non-adjacent positions of the input, which would
// leave the value's rank ambiguous.  FirstIndex and SecondIndex are
// the positions of the two occurrences.
type DuplicateValueError struct {
	Value       any
	FirstIndex  int
	SecondIndex int
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("ordering: duplicate value at indices %v and %v: %v",
		e.FirstIndex, e.SecondIndex, e.Value)
}

// An EmptyInputError is returned by factories that derive a domain
// from a sample (GivenFromSample, containers.MultisetFromSample) and
// therefore require at least one representative value.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input; at least one representative value is required", e.Op)
}

// An IncomparableValueError is the panic value of a partial
// ordering's Compare when an operand is not in the relation's
// declared domain.  Being handed such a value is a bug in the
// caller, not a recoverable condition, which is why it is a panic
// and not a return; tests and validation flows that need to observe
// it can recover it (see derror.PanicToError) or use the non-panic
// domain accessors (GivenOrdering.Rank, containers.Constraint).
type IncomparableValueError struct {
	Value any
}

func (e *IncomparableValueError) Error() string {
	return fmt.Sprintf("ordering: cannot compare value outside of the relation's domain: %v", e.Value)
}
