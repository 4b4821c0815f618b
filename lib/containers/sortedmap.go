// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

type orderedKV[K, V any] struct {
	K K
	V V
}

// SortedMap is a map that iterates in key order, with the order given
// by an explicit Ordering over the key type rather than by a
// comparison method on the key type itself.
//
// The zero SortedMap is not usable; Order must be set before the
// first call to any method.
type SortedMap[K, V any] struct {
	Order ordering.Ordering[K]

	inner RBTree[orderedKV[K, V]]
}

func (m *SortedMap[K, V]) init() {
	if m.inner.Order == nil {
		if m.Order == nil {
			panic(fmt.Errorf("containers.SortedMap: nil Order"))
		}
		m.inner.Order = ordering.ByKey(
			func(kv orderedKV[K, V]) K { return kv.K },
			m.Order)
	}
}

func (m *SortedMap[K, V]) searchKey(key K) func(orderedKV[K, V]) int {
	return func(kv orderedKV[K, V]) int {
		return m.Order.Compare(key, kv.K)
	}
}

func (m *SortedMap[K, V]) Store(key K, value V) {
	m.init()
	m.inner.Insert(orderedKV[K, V]{
		K: key,
		V: value,
	})
}

func (m *SortedMap[K, V]) Load(key K) (value V, ok bool) {
	m.init()
	node := m.inner.Search(m.searchKey(key))
	if node == nil {
		var zero V
		return zero, false
	}
	return node.Value.V, true
}

func (m *SortedMap[K, V]) Has(key K) bool {
	m.init()
	return m.inner.Search(m.searchKey(key)) != nil
}

func (m *SortedMap[K, V]) Delete(key K) {
	m.init()
	m.inner.Delete(m.inner.Search(m.searchKey(key)))
}

func (m *SortedMap[K, V]) Len() int {
	return m.inner.Len()
}

// Min returns the least key in the map (per the Order) and its value,
// or ok=false if the map is empty.
func (m *SortedMap[K, V]) Min() (key K, value V, ok bool) {
	m.init()
	node := m.inner.Min()
	if node == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return node.Value.K, node.Value.V, true
}

// Max returns the greatest key in the map (per the Order) and its
// value, or ok=false if the map is empty.
func (m *SortedMap[K, V]) Max() (key K, value V, ok bool) {
	m.init()
	node := m.inner.Max()
	if node == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return node.Value.K, node.Value.V, true
}

// Range calls f for each entry in the map, in key order, until f
// returns false.
func (m *SortedMap[K, V]) Range(f func(key K, value V) bool) {
	m.init()
	m.inner.Range(func(node *RBNode[orderedKV[K, V]]) bool {
		return f(node.Value.K, node.Value.V)
	})
}

// Subrange calls handleFn for each entry in the contiguous run of
// keys for which rangeFn returns 0, in key order, until handleFn
// returns false.  rangeFn follows the RBTree.Search convention: <0
// means the entry is too high, >0 means it is too low.
func (m *SortedMap[K, V]) Subrange(rangeFn func(K, V) int, handleFn func(K, V) bool) {
	m.init()
	m.inner.Subrange(
		func(kv orderedKV[K, V]) int { return rangeFn(kv.K, kv.V) },
		func(node *RBNode[orderedKV[K, V]]) bool { return handleFn(node.Value.K, node.Value.V) })
}

var _ SubrangeMap[int, string] = (*SortedMap[int, string])(nil)
