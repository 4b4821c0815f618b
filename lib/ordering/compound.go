// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"fmt"
)

// Compound combines an ordered sequence of orderings in to a single
// lexicographic ordering: Compare returns the result of the first
// component that disagrees about a and b, and 0 if every component
// (or an empty sequence) considers them equivalent.  The first
// component is the primary sort key, the second breaks its ties, and
// so on.
//
// The returned ordering retains the components slice rather than
// copying it, so a caller that passes an existing slice with
// `Compound(s...)` shares structure with the relation; reordering or
// overwriting that slice's elements changes the relation's behavior,
// and doing so concurrently with a Compare call is a data race.
//
// It is invalid (runtime-panic) to call Compound with a nil
// component.
func Compound[T any](components ...Ordering[T]) Ordering[T] {
	for i, component := range components {
		if component == nil {
			panic(fmt.Errorf("ordering.Compound: nil component ordering at index %v", i))
		}
	}
	return compoundOrdering[T]{components: components}
}

type compoundOrdering[T any] struct {
	components []Ordering[T]
}

func (o compoundOrdering[T]) Compare(a, b T) int {
	for _, component := range o.components {
		if d := component.Compare(a, b); d != 0 {
			return d
		}
	}
	return 0
}

func (o compoundOrdering[T]) Equal(other Ordering[T]) bool {
	p, ok := other.(compoundOrdering[T])
	if !ok || len(o.components) != len(p.components) {
		return false
	}
	for i := range o.components {
		if !o.components[i].Equal(p.components[i]) {
			return false
		}
	}
	return true
}

func (o compoundOrdering[T]) Hash() uint64 {
	parts := make([]uint64, len(o.components))
	for i, component := range o.components {
		parts[i] = component.Hash()
	}
	return hash64(hashKindCompound, parts...)
}
