// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

// rankedID compares by Rank only, so two values can be equivalent to
// the ordering while still being told apart by ID.
type rankedID struct {
	Rank int
	ID   string
}

func (a rankedID) Compare(b rankedID) int {
	return ordering.NativeCompare(a.Rank, b.Rank)
}

var _ ordering.Ordered[rankedID] = rankedID{}

func TestMinMax(t *testing.T) {
	t.Parallel()
	lo := rankedID{Rank: 1, ID: "lo"}
	hi := rankedID{Rank: 2, ID: "hi"}

	require.Equal(t, "lo", ordering.Min(lo, hi).ID)
	require.Equal(t, "lo", ordering.Min(hi, lo).ID)
	require.Equal(t, "hi", ordering.Max(lo, hi).ID)
	require.Equal(t, "hi", ordering.Max(hi, lo).ID)
}

func TestMinMaxTie(t *testing.T) {
	t.Parallel()
	a := rankedID{Rank: 1, ID: "a"}
	b := rankedID{Rank: 1, ID: "b"}

	// On a tie, the first operand wins; for Max too.
	require.Equal(t, "a", ordering.Min(a, b).ID)
	require.Equal(t, "b", ordering.Min(b, a).ID)
	require.Equal(t, "a", ordering.Max(a, b).ID)
	require.Equal(t, "b", ordering.Max(b, a).ID)
}

func TestNativeMinMax(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, ordering.NativeMin(1, 2))
	require.Equal(t, 1, ordering.NativeMin(2, 1))
	require.Equal(t, 2, ordering.NativeMax(1, 2))
	require.Equal(t, 2, ordering.NativeMax(2, 1))
	require.Equal(t, "a", ordering.NativeMin("b", "a"))
}

func TestMinByMaxBy(t *testing.T) {
	t.Parallel()
	o := ordering.ByNativeKey(func(v rankedID) int { return v.Rank })

	lo := rankedID{Rank: 1, ID: "lo"}
	hi := rankedID{Rank: 2, ID: "hi"}
	require.Equal(t, "lo", ordering.MinBy(o, lo, hi).ID)
	require.Equal(t, "hi", ordering.MaxBy(o, lo, hi).ID)

	a := rankedID{Rank: 7, ID: "a"}
	b := rankedID{Rank: 7, ID: "b"}
	require.Equal(t, "a", ordering.MinBy(o, a, b).ID)
	require.Equal(t, "a", ordering.MaxBy(o, a, b).ID)
}

func TestMinByAbsent(t *testing.T) {
	t.Parallel()

	// Absent operands are fine when the ordering handles absence.
	o := ordering.NullsFirst(ordering.Native[int]())
	three := 3
	require.Nil(t, ordering.MinBy[*int](o, nil, &three))
	require.Equal(t, &three, ordering.MaxBy[*int](o, nil, &three))
}
