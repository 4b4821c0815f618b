// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ByKey returns an ordering of T that projects each value to a key
// with the given function and compares the keys with keyOrdering.
//
// The projection is treated as a black box, but callers should keep
// it deterministic; a projection that gives different keys for the
// same value on different calls yields an inconsistent relation.
//
// For the purposes of Equal and Hash, the identity of a projection
// is its code pointer: two ByKey orderings over the same named
// function (or over closures of the same function literal) are
// structurally equal if their key orderings are.
//
// It is invalid (runtime-panic) to call ByKey with a nil projection
// or a nil key ordering.
func ByKey[T, K any](key func(T) K, keyOrdering Ordering[K]) Ordering[T] {
	if key == nil {
		panic(fmt.Errorf("ordering.ByKey: nil key projection"))
	}
	if keyOrdering == nil {
		panic(fmt.Errorf("ordering.ByKey: nil key ordering"))
	}
	return byKeyOrdering[T, K]{key: key, keyOrdering: keyOrdering}
}

type byKeyOrdering[T, K any] struct {
	key         func(T) K
	keyOrdering Ordering[K]
}

func (o byKeyOrdering[T, K]) Compare(a, b T) int {
	return o.keyOrdering.Compare(o.key(a), o.key(b))
}

func (o byKeyOrdering[T, K]) Equal(other Ordering[T]) bool {
	p, ok := other.(byKeyOrdering[T, K])
	return ok && funcID(o.key) == funcID(p.key) && o.keyOrdering.Equal(p.keyOrdering)
}

func (o byKeyOrdering[T, K]) Hash() uint64 {
	return hash64(hashKindByKey, funcID(o.key), o.keyOrdering.Hash())
}

// ByNaturalKey is ByKey for a key type that carries its own
// comparison; the keys are compared with the key type's Compare
// method.
//
// It is invalid (runtime-panic) to call ByNaturalKey with a nil
// projection.
func ByNaturalKey[T any, K Ordered[K]](key func(T) K) Ordering[T] {
	if key == nil {
		panic(fmt.Errorf("ordering.ByNaturalKey: nil key projection"))
	}
	return byNaturalKeyOrdering[T, K]{key: key}
}

type byNaturalKeyOrdering[T any, K Ordered[K]] struct {
	key func(T) K
}

func (o byNaturalKeyOrdering[T, K]) Compare(a, b T) int {
	return o.key(a).Compare(o.key(b))
}

func (o byNaturalKeyOrdering[T, K]) Equal(other Ordering[T]) bool {
	p, ok := other.(byNaturalKeyOrdering[T, K])
	return ok && funcID(o.key) == funcID(p.key)
}

func (o byNaturalKeyOrdering[T, K]) Hash() uint64 {
	return hash64(hashKindByNaturalKey, funcID(o.key))
}

// ByNativeKey is ByKey for a natively ordered key type (integers,
// floats, strings); the keys are compared with NativeCompare.
//
// It is invalid (runtime-panic) to call ByNativeKey with a nil
// projection.
func ByNativeKey[T any, K constraints.Ordered](key func(T) K) Ordering[T] {
	if key == nil {
		panic(fmt.Errorf("ordering.ByNativeKey: nil key projection"))
	}
	return byNativeKeyOrdering[T, K]{key: key}
}

type byNativeKeyOrdering[T any, K constraints.Ordered] struct {
	key func(T) K
}

func (o byNativeKeyOrdering[T, K]) Compare(a, b T) int {
	return NativeCompare(o.key(a), o.key(b))
}

func (o byNativeKeyOrdering[T, K]) Equal(other Ordering[T]) bool {
	p, ok := other.(byNativeKeyOrdering[T, K])
	return ok && funcID(o.key) == funcID(p.key)
}

func (o byNativeKeyOrdering[T, K]) Hash() uint64 {
	return hash64(hashKindByNativeKey, funcID(o.key))
}

// funcID is the identity of a projection function, for structural
// equality of the relations that hold one.
func funcID(fn any) uint64 {
	return uint64(reflect.ValueOf(fn).Pointer())
}
