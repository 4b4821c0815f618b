// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

func TestSortedMap(t *testing.T) {
	t.Parallel()

	m := &SortedMap[string, int]{
		Order: ordering.Native[string](),
	}
	require.Equal(t, 0, m.Len())

	m.Store("banana", 2)
	m.Store("apple", 1)
	m.Store("cherry", 3)
	require.Equal(t, 3, m.Len())

	v, ok := m.Load("banana")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.True(t, m.Has("banana"))

	_, ok = m.Load("durian")
	require.False(t, ok)
	require.False(t, m.Has("durian"))

	// Storing an existing key replaces the value.
	m.Store("banana", 20)
	v, _ = m.Load("banana")
	require.Equal(t, 20, v)
	require.Equal(t, 3, m.Len())

	var keys []string
	m.Range(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"apple", "banana", "cherry"}, keys)

	k, v, ok := m.Min()
	require.True(t, ok)
	require.Equal(t, "apple", k)
	require.Equal(t, 1, v)
	k, v, ok = m.Max()
	require.True(t, ok)
	require.Equal(t, "cherry", k)
	require.Equal(t, 3, v)

	m.Delete("banana")
	require.False(t, m.Has("banana"))
	require.Equal(t, 2, m.Len())
	m.Delete("banana") // deleting an absent key is a no-op
	require.Equal(t, 2, m.Len())
}

func TestSortedMapOrder(t *testing.T) {
	t.Parallel()

	severity, err := ordering.Given("low", "medium", "high")
	require.NoError(t, err)

	m := &SortedMap[string, int]{
		Order: severity,
	}
	m.Store("high", 1)
	m.Store("low", 10)
	m.Store("medium", 5)

	var keys []string
	m.Range(func(k string, _ int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []string{"low", "medium", "high"}, keys)

	k, _, ok := m.Min()
	require.True(t, ok)
	require.Equal(t, "low", k)
	k, _, ok = m.Max()
	require.True(t, ok)
	require.Equal(t, "high", k)
}

func TestSortedMapSubrange(t *testing.T) {
	t.Parallel()

	m := &SortedMap[int, string]{
		Order: ordering.Native[int](),
	}
	for _, k := range []int{1, 3, 5, 7, 9} {
		m.Store(k, "")
	}

	var got []int
	m.Subrange(
		func(k int, _ string) int {
			switch {
			case k < 3:
				return 1
			case k > 7:
				return -1
			default:
				return 0
			}
		},
		func(k int, _ string) bool {
			got = append(got, k)
			return true
		})
	require.Equal(t, []int{3, 5, 7}, got)
}

func TestSortedMapLoadOrElse(t *testing.T) {
	t.Parallel()

	m := &SortedMap[string, int]{
		Order: ordering.Native[string](),
	}
	calls := 0
	lenOf := func(k string) int {
		calls++
		return len(k)
	}
	require.Equal(t, 5, LoadOrElse[string, int](m, "hello", lenOf))
	require.Equal(t, 5, LoadOrElse[string, int](m, "hello", lenOf))
	require.Equal(t, 1, calls)
}

func TestSortedMapNilOrder(t *testing.T) {
	t.Parallel()

	m := new(SortedMap[string, int])
	require.PanicsWithError(t, "containers.SortedMap: nil Order", func() {
		m.Store("x", 1)
	})
}

func TestSortedMapEmpty(t *testing.T) {
	t.Parallel()

	m := &SortedMap[string, int]{
		Order: ordering.Native[string](),
	}
	_, _, ok := m.Min()
	require.False(t, ok)
	_, _, ok = m.Max()
	require.False(t, ok)
}
