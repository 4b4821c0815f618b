// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

// A GivenOrdering is a partial ordering defined only over an
// explicit, finite, ordered list of representative values: each
// distinct value is assigned a rank equal to its first position in
// the list, and values compare by rank.  Comparing a value that is
// not in the declared domain is a runtime-panic (see Compare).
//
// A GivenOrdering is built with Given or GivenFromSample, is
// immutable thereafter, and is safe for concurrent use.
type GivenOrdering[T comparable] struct {
	ranks  map[T]int
	domain []T
}

// Given builds the partial ordering of the listed values, in the
// order listed.
//
// The input is walked once, inserting each value with its index as
// its rank.  A run of consecutive equal values collapses in to the
// first occurrence's rank (the position counter still advances, so
// Given("a", "a", "b") ranks "a" at 0 and "b" at 2).  The same value
// at two non-adjacent positions is rejected with a
// *DuplicateValueError carrying the value and both positions; no
// ordering is produced.
//
// An empty input is allowed and yields an ordering with an empty
// domain, for which every Compare call panics.
func Given[T comparable](valuesInOrder ...T) (*GivenOrdering[T], error) {
	o := &GivenOrdering[T]{
		ranks:  make(map[T]int, len(valuesInOrder)),
		domain: make([]T, 0, len(valuesInOrder)),
	}
	for i, value := range valuesInOrder {
		if i > 0 && value == valuesInOrder[i-1] {
			continue
		}
		if prior, dup := o.ranks[value]; dup {
			return nil, &DuplicateValueError{
				Value:       value,
				FirstIndex:  prior,
				SecondIndex: i,
			}
		}
		o.ranks[value] = i
		o.domain = append(o.domain, value)
	}
	return o, nil
}

// GivenFromSample builds the partial ordering whose domain is the
// distinct values of the sample, ranked in first-seen order.  Unlike
// Given, repeated values are fine wherever they occur; only the
// first occurrence counts.  An empty sample is rejected with an
// *EmptyInputError, since no domain can be derived from it.
func GivenFromSample[T comparable](sample ...T) (*GivenOrdering[T], error) {
	if len(sample) == 0 {
		return nil, &EmptyInputError{Op: "ordering.GivenFromSample"}
	}
	o := &GivenOrdering[T]{
		ranks: make(map[T]int, len(sample)),
	}
	for i, value := range sample {
		if _, seen := o.ranks[value]; seen {
			continue
		}
		o.ranks[value] = i
		o.domain = append(o.domain, value)
	}
	return o, nil
}

// Compare compares two domain values by rank.
//
// It is invalid (runtime-panic, with an *IncomparableValueError) to
// call Compare with a value that is not in the declared domain; use
// Rank to probe membership without risking the panic.
func (o *GivenOrdering[T]) Compare(a, b T) int {
	aRank, ok := o.ranks[a]
	if !ok {
		panic(&IncomparableValueError{Value: a})
	}
	bRank, ok := o.ranks[b]
	if !ok {
		panic(&IncomparableValueError{Value: b})
	}
	return NativeCompare(aRank, bRank)
}

// Rank returns the rank of v, and whether v is in the declared
// domain at all.
func (o *GivenOrdering[T]) Rank(v T) (int, bool) {
	rank, ok := o.ranks[v]
	return rank, ok
}

// Domain returns the distinct domain values in rank order.  The
// returned slice is a fresh copy.
func (o *GivenOrdering[T]) Domain() []T {
	ret := make([]T, len(o.domain))
	copy(ret, o.domain)
	return ret
}

// Len returns the number of distinct values in the declared domain.
func (o *GivenOrdering[T]) Len() int {
	return len(o.ranks)
}

// Equal reports whether other is a GivenOrdering with an equal rank
// table: the same values, each at the same rank.  Note that equal
// rank tables require equal positions, not merely the same relative
// order, so GivenFromSample("a", "a", "b") is not Equal to
// Given("a", "b") even though the two sort identically.
func (o *GivenOrdering[T]) Equal(other Ordering[T]) bool {
	p, ok := other.(*GivenOrdering[T])
	if !ok || len(o.ranks) != len(p.ranks) {
		return false
	}
	for value, rank := range o.ranks {
		if pRank, ok := p.ranks[value]; !ok || pRank != rank {
			return false
		}
	}
	return true
}

func (o *GivenOrdering[T]) Hash() uint64 {
	// XOR-fold the entries so that the map's iteration order
	// can't leak in to the hash.
	var acc uint64
	for value, rank := range o.ranks {
		acc ^= hash64(uint64(rank), hashValue(value))
	}
	return hash64(hashKindGiven, acc)
}

var _ Ordering[string] = (*GivenOrdering[string])(nil)
