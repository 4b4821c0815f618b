// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"golang.org/x/exp/constraints"
)

// isNaN reports whether x is a floating-point NaN, without requiring
// a float-specific constraint; for non-float instantiations it is
// always false.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// NativeCompare gives the three-way comparison of any two values of
// a type that supports the native `<` operator.
//
// For floating-point instantiations, NativeCompare extends the
// native operators to a total ordering: NaN compares greater than
// every other value (+Inf included) and equal to itself, while
// negative zero and positive zero compare equal.
func NativeCompare[T constraints.Ordered](a, b T) int {
	switch {
	case isNaN(a):
		if isNaN(b) {
			return 0
		}
		return 1
	case isNaN(b):
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NativeCompareBool is NativeCompare for bools, which the native `<`
// operator does not support; false compares less than true.
func NativeCompareBool[T ~bool](a, b T) int {
	switch {
	case bool(!a && b):
		return -1
	case bool(a && !b):
		return 1
	default:
		return 0
	}
}

// NativeOrdered takes a type that is natively ordered (integers,
// floats, strings) and wraps it such that it has an Ordered Compare
// method, with NativeCompare's semantics.
type NativeOrdered[T constraints.Ordered] struct {
	Val T
}

func (a NativeOrdered[T]) Compare(b NativeOrdered[T]) int {
	return NativeCompare(a.Val, b.Val)
}

var _ Ordered[NativeOrdered[int]] = NativeOrdered[int]{}
