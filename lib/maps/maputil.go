// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package maps implements generic (type-parameterized) utilities for
// working with simple Go maps.
package maps

import (
	"golang.org/x/exp/constraints"

	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func Keys[K comparable, V any](m map[K]V) []K {
	ret := make([]K, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	return ret
}

func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	ret := Keys(m)
	slices.Sort(ret)
	return ret
}

// KeysSortedBy returns the map's keys sorted by the given ordering,
// for iterating a map in an ordering-defined order.
func KeysSortedBy[K comparable, V any](m map[K]V, o ordering.Ordering[K]) []K {
	ret := Keys(m)
	slices.SortBy(ret, o)
	return ret
}
