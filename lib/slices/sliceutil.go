// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package slices implements generic (type-parameterized) utilities
// for working with simple Go slices.
package slices

import (
	"sort"

	"golang.org/x/exp/constraints"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

func Contains[T comparable](needle T, haystack []T) bool {
	for _, straw := range haystack {
		if needle == straw {
			return true
		}
	}
	return false
}

func RemoveAll[T comparable](haystack []T, needle T) []T {
	for i, straw := range haystack {
		if needle == straw {
			return append(
				haystack[:i],
				RemoveAll(haystack[i+1:], needle)...)
		}
	}
	return haystack
}

func RemoveAllFunc[T any](haystack []T, f func(T) bool) []T {
	for i, straw := range haystack {
		if f(straw) {
			return append(
				haystack[:i],
				RemoveAllFunc(haystack[i+1:], f)...)
		}
	}
	return haystack
}

func Reverse[T any](slice []T) {
	for i := 0; i < len(slice)/2; i++ {
		j := (len(slice) - 1) - i
		slice[i], slice[j] = slice[j], slice[i]
	}
}

// Max returns the largest of the given values, by
// ordering.NativeCompare; on ties the earliest operand wins.
func Max[T constraints.Ordered](a T, rest ...T) T {
	ret := a
	for _, b := range rest {
		if ordering.NativeCompare(b, ret) > 0 {
			ret = b
		}
	}
	return ret
}

// Min returns the smallest of the given values, by
// ordering.NativeCompare; on ties the earliest operand wins.
func Min[T constraints.Ordered](a T, rest ...T) T {
	ret := a
	for _, b := range rest {
		if ordering.NativeCompare(b, ret) < 0 {
			ret = b
		}
	}
	return ret
}

// Sort sorts a slice of natively ordered values ascending, by
// ordering.NativeCompare (so float NaNs sort to the end, rather than
// clumping wherever they started).
func Sort[T constraints.Ordered](slice []T) {
	sort.Slice(slice, func(i, j int) bool {
		return ordering.NativeCompare(slice[i], slice[j]) < 0
	})
}

// SortBy sorts a slice by the given ordering.  The sort is not
// stable; use SortStableBy when equivalent values must keep their
// relative order.
func SortBy[T any](slice []T, o ordering.Ordering[T]) {
	sort.Slice(slice, func(i, j int) bool {
		return o.Compare(slice[i], slice[j]) < 0
	})
}

// SortStableBy sorts a slice by the given ordering, keeping the
// original relative order of equivalent values.
func SortStableBy[T any](slice []T, o ordering.Ordering[T]) {
	sort.SliceStable(slice, func(i, j int) bool {
		return o.Compare(slice[i], slice[j]) < 0
	})
}

// IsSortedBy reports whether the slice is already in the order that
// SortBy would put it in.
func IsSortedBy[T any](slice []T, o ordering.Ordering[T]) bool {
	return sort.SliceIsSorted(slice, func(i, j int) bool {
		return o.Compare(slice[i], slice[j]) < 0
	})
}

// returns (a+b)/2, but avoids overflow
func avg(a, b int) int {
	return int(uint(a+b) >> 1)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Search the slice for a value for which `fn(slice[i]) = 0`.
//
//	: + + + 0 0 0 - - -
//	:       ^ ^ ^
//	:       any of
//
// You can conceptualize `fn` as subtraction:
//
//	func(straw T) int {
//	    return needle - straw
//	}
func Search[T any](slice []T, fn func(T) int) (int, bool) {
	beg, end := 0, len(slice)
	for beg < end {
		midpoint := avg(beg, end)
		direction := fn(slice[midpoint])
		switch {
		case direction < 0:
			end = midpoint
		case direction > 0:
			beg = midpoint + 1
		case direction == 0:
			return midpoint, true
		}
	}
	return 0, false
}

// Search the slice for the left-most value for which `fn(slice[i]) = 0`.
//
//	: + + + 0 0 0 - - -
//	:       ^
//
// You can conceptualize `fn` as subtraction:
//
//	func(straw T) int {
//	    return needle - straw
//	}
func SearchLowest[T any](slice []T, fn func(T) int) (int, bool) {
	lastBad, firstGood, firstBad := -1, len(slice), len(slice)
	for lastBad+1 < min(firstGood, firstBad) {
		midpoint := avg(lastBad, min(firstGood, firstBad))
		direction := fn(slice[midpoint])
		switch {
		case direction < 0:
			firstBad = midpoint
		case direction > 0:
			lastBad = midpoint
		default:
			firstGood = midpoint
		}
	}
	if firstGood == len(slice) {
		return 0, false
	}
	return firstGood, true
}

// Search the slice for the right-most value for which `fn(slice[i]) = 0`.
//
//	: + + + 0 0 0 - - -
//	:           ^
//
// You can conceptualize `fn` as subtraction:
//
//	func(straw T) int {
//	    return needle - straw
//	}
func SearchHighest[T any](slice []T, fn func(T) int) (int, bool) {
	lastBad, lastGood, firstBad := -1, -1, len(slice)
	for max(lastBad, lastGood)+1 < firstBad {
		midpoint := avg(max(lastBad, lastGood), firstBad)
		direction := fn(slice[midpoint])
		switch {
		case direction < 0:
			firstBad = midpoint
		case direction > 0:
			lastBad = midpoint
		default:
			lastGood = midpoint
		}
	}
	if lastGood < 0 {
		return 0, false
	}
	return lastGood, true
}

// SearchBy searches a slice that is sorted per IsSortedBy(slice, o)
// for needle, with the same result conventions as Search.
func SearchBy[T any](slice []T, needle T, o ordering.Ordering[T]) (int, bool) {
	return Search(slice, func(straw T) int {
		return o.Compare(needle, straw)
	})
}

// SearchLowestBy is SearchBy for the left-most match, for slices
// that hold runs of equivalent values.
func SearchLowestBy[T any](slice []T, needle T, o ordering.Ordering[T]) (int, bool) {
	return SearchLowest(slice, func(straw T) int {
		return o.Compare(needle, straw)
	})
}

// SearchHighestBy is SearchBy for the right-most match, for slices
// that hold runs of equivalent values.
func SearchHighestBy[T any](slice []T, needle T, o ordering.Ordering[T]) (int, bool) {
	return SearchHighest(slice, func(straw T) int {
		return o.Compare(needle, straw)
	})
}
