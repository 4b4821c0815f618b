// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"golang.org/x/exp/constraints"
)

// Min returns the lesser of two naturally ordered values.  On a tie
// it returns a, the first operand, not b; callers that care which of
// two equivalent-but-distinguishable values they get back can rely
// on that.
func Min[T Ordered[T]](a, b T) T {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of two naturally ordered values.  On a tie
// it returns a, the first operand, like Min.
func Max[T Ordered[T]](a, b T) T {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// NativeMin returns the lesser of two natively ordered values, by
// NativeCompare.  On a tie it returns a, the first operand.
func NativeMin[T constraints.Ordered](a, b T) T {
	if NativeCompare(a, b) <= 0 {
		return a
	}
	return b
}

// NativeMax returns the greater of two natively ordered values, by
// NativeCompare.  On a tie it returns a, the first operand.
func NativeMax[T constraints.Ordered](a, b T) T {
	if NativeCompare(a, b) >= 0 {
		return a
	}
	return b
}

// MinBy returns whichever of two values the given ordering sorts
// first.  On a tie it returns a, the first operand.  The operands
// may be absent (nil pointers) if o explicitly supports absence,
// such as a NullsFirst/NullsLast ordering.
func MinBy[T any](o Ordering[T], a, b T) T {
	if o.Compare(a, b) <= 0 {
		return a
	}
	return b
}

// MaxBy returns whichever of two values the given ordering sorts
// last.  On a tie it returns a, the first operand.
func MaxBy[T any](o Ordering[T], a, b T) T {
	if o.Compare(a, b) >= 0 {
		return a
	}
	return b
}
