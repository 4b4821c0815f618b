// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/slices"
)

func TestCompound(t *testing.T) {
	t.Parallel()
	byLen := ordering.ByNativeKey(func(s string) int { return len(s) })
	lex := ordering.Native[string]()
	o := ordering.Compound(byLen, lex)

	// Primary key first; ties fall through in sequence order.
	require.Equal(t, -1, o.Compare("c", "bb"))
	require.Equal(t, -1, o.Compare("aa", "bb"))
	require.Equal(t, 1, o.Compare("bb", "aa"))
	require.Equal(t, 0, o.Compare("aa", "aa"))

	// The compound result is the first nonzero component result.
	for _, pair := range [][2]string{{"c", "bb"}, {"aa", "bb"}, {"aa", "aa"}} {
		a, b := pair[0], pair[1]
		want := byLen.Compare(a, b)
		if want == 0 {
			want = lex.Compare(a, b)
		}
		require.Equal(t, want, o.Compare(a, b))
	}
}

func TestCompoundEmpty(t *testing.T) {
	t.Parallel()
	o := ordering.Compound[string]()
	require.Equal(t, 0, o.Compare("a", "b"))
	require.Equal(t, 0, o.Compare("b", "a"))
}

func TestCompoundSort(t *testing.T) {
	t.Parallel()
	vals := []string{"bb", "aa", "c", "ab"}
	slices.SortBy(vals, ordering.Compound(
		ordering.ByNativeKey(func(s string) int { return len(s) }),
		ordering.Native[string]()))
	require.Equal(t, []string{"c", "aa", "ab", "bb"}, vals)
}

func TestCompoundLiveView(t *testing.T) {
	t.Parallel()

	// The compound ordering does not copy the components slice;
	// overwriting a slot changes the relation.
	components := []ordering.Ordering[string]{
		ordering.Native[string](),
	}
	o := ordering.Compound(components...)
	require.Equal(t, -1, o.Compare("a", "b"))
	components[0] = ordering.Reverse(ordering.Native[string]())
	require.Equal(t, 1, o.Compare("a", "b"))
}

func TestCompoundInvalid(t *testing.T) {
	t.Parallel()
	require.Error(t, panicErr(t, func() {
		ordering.Compound(ordering.Native[string](), nil)
	}))
}
