// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
)

// ByString returns the ordering of T by the fmt.Sprint rendering of
// each value, compared bytewise.  This is a debugging order; it has
// no meaningful relationship to any domain ordering of T, beyond
// being consistent for values whose renderings are consistent.
func ByString[T any]() Ordering[T] {
	return stringFormOrdering[T]{}
}

type stringFormOrdering[T any] struct{}

func (stringFormOrdering[T]) Compare(a, b T) int {
	return NativeCompare(fmt.Sprint(a), fmt.Sprint(b))
}

func (stringFormOrdering[T]) Equal(other Ordering[T]) bool {
	_, ok := other.(stringFormOrdering[T])
	return ok
}

func (stringFormOrdering[T]) Hash() uint64 {
	return hash64(hashKindStringForm)
}
