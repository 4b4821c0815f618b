// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
)

// Reverse returns the ordering that sorts exactly opposite to inner.
// Reversing an already-reversed ordering unwraps it and returns the
// original inner ordering, rather than stacking a second decorator.
//
// It is invalid (runtime-panic) to call Reverse with a nil inner
// ordering.
func Reverse[T any](inner Ordering[T]) Ordering[T] {
	if inner == nil {
		panic(fmt.Errorf("ordering.Reverse: nil inner ordering"))
	}
	if o, ok := inner.(reverseOrdering[T]); ok {
		return o.inner
	}
	return reverseOrdering[T]{inner: inner}
}

type reverseOrdering[T any] struct {
	inner Ordering[T]
}

func (o reverseOrdering[T]) Compare(a, b T) int {
	return o.inner.Compare(b, a)
}

func (o reverseOrdering[T]) Equal(other Ordering[T]) bool {
	p, ok := other.(reverseOrdering[T])
	return ok && o.inner.Equal(p.inner)
}

func (o reverseOrdering[T]) Hash() uint64 {
	return hash64(hashKindReverse, o.inner.Hash())
}
