// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func some[T any](val T) Optional[T] {
	return Optional[T]{OK: true, Val: val}
}

func TestOptionalCompare(t *testing.T) {
	t.Parallel()

	absentFirst := OptionalCompare(ordering.Native[int](), true)
	absentLast := OptionalCompare(ordering.Native[int](), false)
	none := Optional[int]{}

	require.Equal(t, 0, absentFirst.Compare(none, none))
	require.Equal(t, -1, absentFirst.Compare(none, some(1)))
	require.Equal(t, 1, absentFirst.Compare(some(1), none))
	require.Equal(t, -1, absentFirst.Compare(some(1), some(2)))

	require.Equal(t, 0, absentLast.Compare(none, none))
	require.Equal(t, 1, absentLast.Compare(none, some(1)))
	require.Equal(t, -1, absentLast.Compare(some(1), none))
	require.Equal(t, 1, absentLast.Compare(some(2), some(1)))

	vals := []Optional[int]{some(3), {}, some(1), {}, some(2)}
	slices.SortBy(vals, absentFirst)
	require.Equal(t, []Optional[int]{{}, {}, some(1), some(2), some(3)}, vals)

	require.PanicsWithError(t, "containers.OptionalCompare: nil inner ordering", func() {
		OptionalCompare[int](nil, true)
	})
}

func TestOptionalCompareEqual(t *testing.T) {
	t.Parallel()

	a := OptionalCompare(ordering.Native[int](), true)
	b := OptionalCompare(ordering.Native[int](), true)
	c := OptionalCompare(ordering.Native[int](), false)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	d := OptionalCompare(ordering.Reverse(ordering.Native[int]()), true)
	require.False(t, a.Equal(d))
}
