// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

type cachedKeyOrdering[T comparable, K any] struct {
	key   func(T) K
	inner ordering.Ordering[K]
	byKey ordering.Ordering[T]
	cache *LRUCache[T, K]
}

// CachedKeyOrdering is ordering.ByKey with the projected keys
// memoized through an LRUCache, for when the key function is
// expensive enough that re-projecting both operands on every
// comparison (as a sort does) is worth avoiding.
//
// The cache is shared by all comparisons through the returned
// relation, and is safe for concurrent use if the key function and
// keyOrdering are.
//
// Structural equality follows ByKey: two CachedKeyOrdering relations
// are equal if they have the same key function and equal key
// relations.  The cache size is capacity, not configuration, and does
// not participate.
//
// It is invalid (runtime-panic) to call CachedKeyOrdering with a
// cacheSize < 1, a nil key function, or a nil keyOrdering.
func CachedKeyOrdering[T comparable, K any](cacheSize int, key func(T) K, keyOrdering ordering.Ordering[K]) ordering.Ordering[T] {
	if cacheSize < 1 {
		panic(fmt.Errorf("containers.CachedKeyOrdering: invalid cache size: %v", cacheSize))
	}
	if key == nil {
		panic(fmt.Errorf("containers.CachedKeyOrdering: nil key function"))
	}
	if keyOrdering == nil {
		panic(fmt.Errorf("containers.CachedKeyOrdering: nil key ordering"))
	}
	return &cachedKeyOrdering[T, K]{
		key:   key,
		inner: keyOrdering,
		byKey: ordering.ByKey(key, keyOrdering),
		cache: NewLRUCache[T, K](cacheSize),
	}
}

func (o *cachedKeyOrdering[T, K]) keyOf(val T) K {
	return o.cache.GetOrElse(val, func() K {
		return o.key(val)
	})
}

func (o *cachedKeyOrdering[T, K]) Compare(a, b T) int {
	return o.inner.Compare(o.keyOf(a), o.keyOf(b))
}

func (o *cachedKeyOrdering[T, K]) Equal(other ordering.Ordering[T]) bool {
	p, ok := other.(*cachedKeyOrdering[T, K])
	return ok && o.byKey.Equal(p.byKey)
}

func (o *cachedKeyOrdering[T, K]) Hash() uint64 {
	return ordering.KindHash("containers.CachedKeyOrdering", o.byKey.Hash())
}
