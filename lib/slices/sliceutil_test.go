// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package slices_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func TestSortNaN(t *testing.T) {
	t.Parallel()
	vals := []float64{math.NaN(), 2, math.Inf(1), 1}
	slices.Sort(vals)
	require.Equal(t, []float64{1, 2}, vals[:2])
	require.True(t, math.IsInf(vals[2], 1))
	require.True(t, math.IsNaN(vals[3]))
}

func TestSortBy(t *testing.T) {
	t.Parallel()
	vals := []string{"bb", "aa", "c", "ab"}
	o := ordering.Compound(
		ordering.ByNativeKey(func(s string) int { return len(s) }),
		ordering.Native[string]())

	require.False(t, slices.IsSortedBy(vals, o))
	slices.SortBy(vals, o)
	require.Equal(t, []string{"c", "aa", "ab", "bb"}, vals)
	require.True(t, slices.IsSortedBy(vals, o))
}

func TestSortStableBy(t *testing.T) {
	t.Parallel()
	type row struct {
		Key int
		ID  string
	}
	vals := []row{
		{Key: 2, ID: "x"},
		{Key: 1, ID: "y"},
		{Key: 2, ID: "z"},
	}
	slices.SortStableBy(vals, ordering.ByNativeKey(func(r row) int { return r.Key }))
	require.Equal(t, []row{
		{Key: 1, ID: "y"},
		{Key: 2, ID: "x"},
		{Key: 2, ID: "z"},
	}, vals)
}

func TestSearchBy(t *testing.T) {
	t.Parallel()
	o := ordering.Reverse(ordering.Native[int]())
	vals := []int{9, 7, 7, 5, 3}
	require.True(t, slices.IsSortedBy(vals, o))

	i, ok := slices.SearchBy(vals, 5, o)
	require.True(t, ok)
	require.Equal(t, 3, i)

	i, ok = slices.SearchLowestBy(vals, 7, o)
	require.True(t, ok)
	require.Equal(t, 1, i)
	i, ok = slices.SearchHighestBy(vals, 7, o)
	require.True(t, ok)
	require.Equal(t, 2, i)

	_, ok = slices.SearchBy(vals, 8, o)
	require.False(t, ok)
}

func TestMinMax(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, slices.Min(3, 1, 2))
	require.Equal(t, 3, slices.Max(3, 1, 2))
	require.Equal(t, 3, slices.Max(1, 2, 3))

	// NaN sorts greatest, so it wins Max and loses Min.
	require.True(t, math.IsNaN(slices.Max(1.0, math.NaN(), 2.0)))
	require.Equal(t, 1.0, slices.Min(1.0, math.NaN(), 2.0))
}
