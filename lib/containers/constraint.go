// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

// A Constraint decides whether a value is admissible.  Check returns
// nil for admissible values, and a descriptive error otherwise; it
// never panics.  String gives a brief human-oriented description of
// the constraint, for use in messages about values that failed it.
type Constraint[T any] interface {
	Check(T) error
	fmt.Stringer
}

type domainConstraint[T comparable] struct {
	order *ordering.GivenOrdering[T]
}

// DomainConstraint admits exactly the values in the domain of the
// given order.  Unlike GivenOrdering.Compare, Check reports an
// out-of-domain value as a returned *ordering.IncomparableValueError
// rather than a panic, since validation exists to handle untrusted
// values.
//
// It is invalid (runtime-panic) to call DomainConstraint with a nil
// order.
func DomainConstraint[T comparable](order *ordering.GivenOrdering[T]) Constraint[T] {
	if order == nil {
		panic(fmt.Errorf("containers.DomainConstraint: nil order"))
	}
	return domainConstraint[T]{order: order}
}

func (c domainConstraint[T]) Check(val T) error {
	if _, ok := c.order.Rank(val); !ok {
		return &ordering.IncomparableValueError{Value: val}
	}
	return nil
}

func (c domainConstraint[T]) String() string {
	return fmt.Sprintf("in domain %v", c.order.Domain())
}

type notNilConstraint[T any] struct{}

// NotNil admits only non-nil pointers.
func NotNil[T any]() Constraint[*T] {
	return notNilConstraint[T]{}
}

func (notNilConstraint[T]) Check(val *T) error {
	if val == nil {
		return fmt.Errorf("value is nil")
	}
	return nil
}

func (notNilConstraint[T]) String() string {
	return "not nil"
}
