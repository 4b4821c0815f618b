// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

// requireEqualOrderings asserts both directions of Equal, plus the
// hash agreement that Equal implies.
func requireEqualOrderings[T any](t *testing.T, a, b ordering.Ordering[T]) {
	t.Helper()
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.Equal(t, a.Hash(), b.Hash())
}

func requireUnequalOrderings[T any](t *testing.T, a, b ordering.Ordering[T]) {
	t.Helper()
	require.False(t, a.Equal(b))
	require.False(t, b.Equal(a))
}

func TestEqualStateless(t *testing.T) {
	t.Parallel()

	// Relations with no configuration are equal across instances.
	requireEqualOrderings(t, ordering.Native[string](), ordering.Native[string]())
	requireEqualOrderings(t, ordering.ByString[int](), ordering.ByString[int]())
	requireEqualOrderings[ordering.NativeOrdered[int]](t,
		ordering.Natural[ordering.NativeOrdered[int]](),
		ordering.Natural[ordering.NativeOrdered[int]]())

	requireUnequalOrderings(t, ordering.Native[int](), ordering.ByString[int]())
}

func TestEqualNulls(t *testing.T) {
	t.Parallel()
	inner := ordering.Native[int]()

	requireEqualOrderings(t, ordering.NullsFirst(inner), ordering.NullsFirst(inner))
	requireEqualOrderings(t, ordering.NullsLast(inner), ordering.NullsLast(inner))

	// Polarity is configuration.
	requireUnequalOrderings(t, ordering.NullsFirst(inner), ordering.NullsLast(inner))
	// So is the wrapped relation.
	requireUnequalOrderings(t,
		ordering.NullsFirst(inner),
		ordering.NullsFirst(ordering.ByString[int]()))
}

func TestEqualCompound(t *testing.T) {
	t.Parallel()
	byLen := ordering.ByNativeKey(strLen)
	lex := ordering.Native[string]()

	requireEqualOrderings(t,
		ordering.Compound(byLen, lex),
		ordering.Compound(ordering.ByNativeKey(strLen), ordering.Native[string]()))

	// Order of components matters.
	requireUnequalOrderings(t,
		ordering.Compound(byLen, lex),
		ordering.Compound[string](lex, byLen))
	// As does length.
	requireUnequalOrderings(t,
		ordering.Compound(byLen, lex),
		ordering.Compound[string](byLen))
	requireEqualOrderings(t, ordering.Compound[string](), ordering.Compound[string]())
}

func TestEqualByKey(t *testing.T) {
	t.Parallel()

	// The same named function is the same projection.
	requireEqualOrderings(t,
		ordering.ByNativeKey(strLen),
		ordering.ByNativeKey(strLen))

	// A distinct function is a distinct projection, even if it
	// behaves identically.
	requireUnequalOrderings(t,
		ordering.ByNativeKey(strLen),
		ordering.ByNativeKey(func(s string) int { return len(s) }))

	// Variant A and variant B are different kinds, even over the
	// same projection.
	requireUnequalOrderings(t,
		ordering.ByNativeKey(strLen),
		ordering.ByKey(strLen, ordering.Native[int]()))

	requireEqualOrderings(t,
		ordering.ByKey(strLen, ordering.Native[int]()),
		ordering.ByKey(strLen, ordering.Native[int]()))
	requireUnequalOrderings(t,
		ordering.ByKey(strLen, ordering.Native[int]()),
		ordering.ByKey(strLen, ordering.ByString[int]()))
}

func TestEqualGiven(t *testing.T) {
	t.Parallel()

	abc1, err := ordering.Given("a", "b", "c")
	require.NoError(t, err)
	abc2, err := ordering.Given("a", "b", "c")
	require.NoError(t, err)
	acb, err := ordering.Given("a", "c", "b")
	require.NoError(t, err)

	requireEqualOrderings[string](t, abc1, abc2)
	requireUnequalOrderings[string](t, abc1, acb)

	// Same relative order but different rank numbers is a
	// different table.
	collapsed, err := ordering.Given("a", "a", "b", "c")
	require.NoError(t, err)
	requireUnequalOrderings[string](t, abc1, collapsed)

	// Behavioral agreement is not structural equality: a Given
	// over ints is not a Native, and a Compound is not a Given.
	intsGiven, err := ordering.Given(1, 2, 3)
	require.NoError(t, err)
	requireUnequalOrderings[int](t, intsGiven, ordering.Native[int]())
	requireUnequalOrderings[string](t, abc1, ordering.Compound[string](abc1))
}

func TestEqualReverse(t *testing.T) {
	t.Parallel()
	lex := ordering.Native[string]()

	requireEqualOrderings(t, ordering.Reverse(lex), ordering.Reverse(lex))
	requireUnequalOrderings(t, ordering.Reverse(lex), lex)

	// Double reversal unwraps rather than stacking.
	requireEqualOrderings(t, ordering.Reverse(ordering.Reverse(lex)), lex)

	rev := ordering.Reverse(lex)
	require.Equal(t, 1, rev.Compare("a", "b"))
	require.Equal(t, -1, rev.Compare("b", "a"))
	require.Equal(t, 0, rev.Compare("a", "a"))
}

func TestHashSpread(t *testing.T) {
	t.Parallel()

	// Unequal relations aren't required to hash differently, but
	// these particular ones had better; a collision here would
	// mean the kind tags aren't being mixed in.
	hashes := []uint64{
		ordering.Native[string]().Hash(),
		ordering.ByString[string]().Hash(),
		ordering.Reverse(ordering.Native[string]()).Hash(),
		ordering.Compound[string]().Hash(),
		ordering.Compound(ordering.Native[string]()).Hash(),
	}
	for i := range hashes {
		for j := i + 1; j < len(hashes); j++ {
			assert.NotEqual(t, hashes[i], hashes[j])
		}
	}
}
