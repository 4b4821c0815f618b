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

func keyLen(s string) int { return len(s) }

func TestCachedKeyOrdering(t *testing.T) {
	t.Parallel()

	cached := CachedKeyOrdering(8, keyLen, ordering.Native[int]())
	plain := ordering.ByNativeKey(keyLen)

	pairs := [][2]string{
		{"a", "bcd"},
		{"bcd", "a"},
		{"ab", "ab"},
		{"", "xyzzy"},
	}
	for _, pair := range pairs {
		assert.Equal(t, plain.Compare(pair[0], pair[1]), cached.Compare(pair[0], pair[1]))
	}

	vals := []string{"ccc", "a", "bb", ""}
	slices.SortBy(vals, cached)
	require.Equal(t, []string{"", "a", "bb", "ccc"}, vals)
}

func TestCachedKeyOrderingMemoizes(t *testing.T) {
	t.Parallel()

	calls := 0
	o := CachedKeyOrdering(8, func(s string) int {
		calls++
		return len(s)
	}, ordering.Native[int]())

	for i := 0; i < 10; i++ {
		require.Equal(t, -1, o.Compare("a", "bc"))
	}
	require.Equal(t, 2, calls)
}

func TestCachedKeyOrderingEqual(t *testing.T) {
	t.Parallel()

	a := CachedKeyOrdering(8, keyLen, ordering.Native[int]())
	b := CachedKeyOrdering(8, keyLen, ordering.Native[int]())
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.Equal(t, a.Hash(), b.Hash())

	// The cache size is capacity, not configuration.
	big := CachedKeyOrdering(1024, keyLen, ordering.Native[int]())
	require.True(t, a.Equal(big))

	// A cached relation and its uncached equivalent are different
	// kinds.
	plain := ordering.ByKey(keyLen, ordering.Native[int]())
	require.False(t, a.Equal(plain))
	require.False(t, plain.Equal(a))
	assert.NotEqual(t, a.Hash(), plain.Hash())

	other := CachedKeyOrdering(8, keyLen, ordering.Reverse(ordering.Native[int]()))
	require.False(t, a.Equal(other))
}

func TestCachedKeyOrderingInvalid(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, "containers.CachedKeyOrdering: invalid cache size: 0", func() {
		CachedKeyOrdering(0, keyLen, ordering.Native[int]())
	})
	require.PanicsWithError(t, "containers.CachedKeyOrdering: nil key function", func() {
		CachedKeyOrdering[string, int](1, nil, ordering.Native[int]())
	})
	require.PanicsWithError(t, "containers.CachedKeyOrdering: nil key ordering", func() {
		CachedKeyOrdering[string, int](1, keyLen, nil)
	})
}
