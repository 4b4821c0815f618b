// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"golang.org/x/exp/constraints"
)

// Natural returns the Ordering of a type that carries its own
// comparison; Compare(a, b) delegates to a.Compare(b).
//
// Any two Natural orderings of the same instantiation are Equal;
// there is no configuration to differ in.
func Natural[T Ordered[T]]() Ordering[T] {
	return naturalOrdering[T]{}
}

type naturalOrdering[T Ordered[T]] struct{}

func (naturalOrdering[T]) Compare(a, b T) int {
	return a.Compare(b)
}

func (naturalOrdering[T]) Equal(other Ordering[T]) bool {
	_, ok := other.(naturalOrdering[T])
	return ok
}

func (naturalOrdering[T]) Hash() uint64 {
	return hash64(hashKindNatural)
}

// Native returns the Ordering of a natively ordered type (integers,
// floats, strings), with NativeCompare's semantics.
func Native[T constraints.Ordered]() Ordering[T] {
	return nativeOrdering[T]{}
}

type nativeOrdering[T constraints.Ordered] struct{}

func (nativeOrdering[T]) Compare(a, b T) int {
	return NativeCompare(a, b)
}

func (nativeOrdering[T]) Equal(other Ordering[T]) bool {
	_, ok := other.(nativeOrdering[T])
	return ok
}

func (nativeOrdering[T]) Hash() uint64 {
	return hash64(hashKindNative)
}

// NativeBool is Native for bools; false sorts before true.
func NativeBool[T ~bool]() Ordering[T] {
	return nativeBoolOrdering[T]{}
}

type nativeBoolOrdering[T ~bool] struct{}

func (nativeBoolOrdering[T]) Compare(a, b T) int {
	return NativeCompareBool(a, b)
}

func (nativeBoolOrdering[T]) Equal(other Ordering[T]) bool {
	_, ok := other.(nativeBoolOrdering[T])
	return ok
}

func (nativeBoolOrdering[T]) Hash() uint64 {
	return hash64(hashKindNativeBool)
}
