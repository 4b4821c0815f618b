// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package ordering implements composable three-way comparison
// relations over arbitrary value types, for driving sorting,
// ranking, and min/max selection.
//
// Relations are built bottom-up: wrap a type's own comparison
// (Natural, Native), decorate it (NullsFirst, NullsLast, Reverse),
// combine several relations lexicographically (Compound), compare by
// a derived key (ByKey, ByNaturalKey, ByNativeKey), or rank values
// against an explicit finite domain (Given).  A finished relation is
// then handed to whatever consumes it: slices.SortBy, a sorted
// container, or the Min/Max helpers here.
package ordering

// An Ordering is a three-way comparison relation over values of type
// T.
//
// Compare returns <0 if a sorts before b, >0 if a sorts after b, and
// 0 if the relation considers them equivalent.  Compare must be
// reflexive (Compare(x, x) == 0) over the relation's domain; a total
// ordering must additionally be antisymmetric and transitive over
// its full domain.  Given intentionally relaxes this to a partial
// ordering over a finite declared domain, and panics when handed a
// value outside of it.
//
// Equal and Hash are about the identity of the relation itself, not
// of the values it compares: two Orderings are Equal iff they are
// the same kind of relation with equal configuration (wrapped
// relations, projection identity, rank table), and Orderings that
// are Equal have equal Hash values.  An Ordering is never Equal to
// an Ordering of a different kind, even if the two agree on every
// comparison.
//
// Orderings are immutable once constructed, and are safe for
// concurrent use.
type Ordering[T any] interface {
	Compare(a, b T) int
	Equal(Ordering[T]) bool
	Hash() uint64
}

type _Ordered[T any] interface {
	Compare(T) int
}

// Ordered is the capability of a type to compare itself against
// other values of its own type; a type with such a Compare method
// has a "natural" ordering (see Natural).
type Ordered[T _Ordered[T]] _Ordered[T]
