// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering_test

import (
	"testing"

	"github.com/datawire/dlib/derror"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

// panicErr runs fn and returns its panic value as an error, failing
// the test if fn does not panic or panics with a non-error.
func panicErr(t *testing.T, fn func()) error {
	t.Helper()
	var rec any
	func() {
		defer func() { rec = recover() }()
		fn()
	}()
	require.NotNil(t, rec, "expected a panic")
	err, ok := rec.(error)
	require.Truef(t, ok, "panic value is not an error: %v", rec)
	return err
}

func TestGiven(t *testing.T) {
	t.Parallel()
	o, err := ordering.Given("LOW", "MEDIUM", "HIGH")
	require.NoError(t, err)

	require.Equal(t, -1, o.Compare("LOW", "HIGH"))
	require.Equal(t, 1, o.Compare("HIGH", "LOW"))
	require.Equal(t, 0, o.Compare("MEDIUM", "MEDIUM"))

	require.Equal(t, 3, o.Len())
	require.Equal(t, []string{"LOW", "MEDIUM", "HIGH"}, o.Domain())

	rank, ok := o.Rank("MEDIUM")
	require.True(t, ok)
	require.Equal(t, 1, rank)
	_, ok = o.Rank("IMAGINARY")
	require.False(t, ok)
}

func TestGivenIncomparable(t *testing.T) {
	t.Parallel()
	o, err := ordering.Given("a", "b", "c")
	require.NoError(t, err)

	perr := panicErr(t, func() {
		o.Compare("z", "a")
	})
	var ive *ordering.IncomparableValueError
	require.ErrorAs(t, perr, &ive)
	require.Equal(t, "z", ive.Value)

	// The right-hand operand is checked too.
	perr = panicErr(t, func() {
		o.Compare("a", "y")
	})
	require.ErrorAs(t, perr, &ive)
	require.Equal(t, "y", ive.Value)
}

func TestGivenDuplicate(t *testing.T) {
	t.Parallel()

	// A non-adjacent duplicate is a construction error carrying
	// the value and both positions.
	o, err := ordering.Given("x", "y", "x")
	require.Nil(t, o)
	var dve *ordering.DuplicateValueError
	require.ErrorAs(t, err, &dve)
	require.Equal(t, "x", dve.Value)
	require.Equal(t, 0, dve.FirstIndex)
	require.Equal(t, 2, dve.SecondIndex)

	// Consecutive duplicates collapse in to one rank; the
	// position counter still advances past them.
	o, err = ordering.Given("a", "a", "b")
	require.NoError(t, err)
	require.Equal(t, 2, o.Len())
	rank, ok := o.Rank("a")
	require.True(t, ok)
	require.Equal(t, 0, rank)
	rank, ok = o.Rank("b")
	require.True(t, ok)
	require.Equal(t, 2, rank)
	require.Equal(t, -1, o.Compare("a", "b"))

	// A duplicate that is non-adjacent because of a collapsed run
	// is still rejected.
	_, err = ordering.Given("a", "a", "b", "a")
	require.ErrorAs(t, err, &dve)
	require.Equal(t, "a", dve.Value)
	require.Equal(t, 0, dve.FirstIndex)
	require.Equal(t, 3, dve.SecondIndex)
}

func TestGivenEmpty(t *testing.T) {
	t.Parallel()

	// An empty domain is allowed; it just can't compare anything.
	o, err := ordering.Given[string]()
	require.NoError(t, err)
	require.Equal(t, 0, o.Len())
	require.Empty(t, o.Domain())
	require.Error(t, panicErr(t, func() {
		o.Compare("a", "a")
	}))
}

func TestGivenFromSample(t *testing.T) {
	t.Parallel()

	// Duplicates are fine anywhere in a sample; ranks are
	// first-seen positions.
	o, err := ordering.GivenFromSample("b", "a", "b", "c", "a")
	require.NoError(t, err)
	require.Equal(t, 3, o.Len())
	require.Equal(t, []string{"b", "a", "c"}, o.Domain())
	rank, ok := o.Rank("c")
	require.True(t, ok)
	require.Equal(t, 3, rank)
	require.Equal(t, -1, o.Compare("b", "a"))

	_, err = ordering.GivenFromSample[string]()
	var eie *ordering.EmptyInputError
	require.ErrorAs(t, err, &eie)
	require.Equal(t, "ordering.GivenFromSample", eie.Op)
}

func FuzzGiven(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("abc"))
	f.Add([]byte("aab"))
	f.Add([]byte("aba"))
	f.Add([]byte("aaba"))

	f.Fuzz(func(t *testing.T, dat []byte) {
		defer func() {
			if err := derror.PanicToError(recover()); err != nil {
				t.Errorf("%+v", err)
			}
		}()

		// Squash the input down to a 4-letter alphabet so that
		// collisions actually happen.
		vals := make([]byte, len(dat))
		for i, b := range dat {
			vals[i] = 'a' + b%4
		}

		o, err := ordering.Given(vals...)
		if err != nil {
			var dve *ordering.DuplicateValueError
			require.ErrorAs(t, err, &dve)
			val, ok := dve.Value.(byte)
			require.True(t, ok)
			require.Equal(t, val, vals[dve.FirstIndex])
			require.Equal(t, val, vals[dve.SecondIndex])
			require.Greater(t, dve.SecondIndex, dve.FirstIndex+1)
			return
		}

		domain := o.Domain()
		require.Equal(t, o.Len(), len(domain))
		prevRank := -1
		for _, v := range domain {
			rank, ok := o.Rank(v)
			require.True(t, ok)
			require.Equal(t, v, vals[rank])
			require.Greater(t, rank, prevRank)
			prevRank = rank
			require.Equal(t, 0, o.Compare(v, v))
		}
		for i := 0; i+1 < len(domain); i++ {
			require.Equal(t, -1, o.Compare(domain[i], domain[i+1]))
			require.Equal(t, 1, o.Compare(domain[i+1], domain[i]))
		}
	})
}
