// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
)

// NullsFirst decorates an ordering of T in to an ordering of *T in
// which nil sorts before every present value.  Two nils compare
// equal; two present values are compared by inner, which is never
// handed a nil.
//
// It is invalid (runtime-panic) to call NullsFirst with a nil inner
// ordering.
func NullsFirst[T any](inner Ordering[T]) Ordering[*T] {
	if inner == nil {
		panic(fmt.Errorf("ordering.NullsFirst: nil inner ordering"))
	}
	return nullsOrdering[T]{inner: inner, nullsFirst: true}
}

// NullsLast decorates an ordering of T in to an ordering of *T in
// which nil sorts after every present value.  Two nils compare
// equal; two present values are compared by inner, which is never
// handed a nil.
//
// It is invalid (runtime-panic) to call NullsLast with a nil inner
// ordering.
func NullsLast[T any](inner Ordering[T]) Ordering[*T] {
	if inner == nil {
		panic(fmt.Errorf("ordering.NullsLast: nil inner ordering"))
	}
	return nullsOrdering[T]{inner: inner, nullsFirst: false}
}

type nullsOrdering[T any] struct {
	inner      Ordering[T]
	nullsFirst bool
}

func (o nullsOrdering[T]) Compare(a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		if o.nullsFirst {
			return -1
		}
		return 1
	case b == nil:
		if o.nullsFirst {
			return 1
		}
		return -1
	default:
		return o.inner.Compare(*a, *b)
	}
}

func (o nullsOrdering[T]) Equal(other Ordering[*T]) bool {
	p, ok := other.(nullsOrdering[T])
	return ok && o.nullsFirst == p.nullsFirst && o.inner.Equal(p.inner)
}

func (o nullsOrdering[T]) Hash() uint64 {
	tag := hashKindNullsLast
	if o.nullsFirst {
		tag = hashKindNullsFirst
	}
	return hash64(tag, o.inner.Hash())
}
