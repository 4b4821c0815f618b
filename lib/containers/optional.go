// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"encoding/json"
	"fmt"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

type Optional[T any] struct {
	OK  bool
	Val T
}

var (
	_ json.Marshaler   = Optional[bool]{}
	_ json.Unmarshaler = (*Optional[bool])(nil)
)

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.OK {
		return []byte("null"), nil
	}
	return json.Marshal(o.Val)
}

func (o *Optional[T]) UnmarshalJSON(dat []byte) error {
	if string(dat) == "null" {
		*o = Optional[T]{}
		return nil
	}
	o.OK = true
	return json.Unmarshal(dat, &o.Val)
}

type optionalOrdering[T any] struct {
	inner       ordering.Ordering[T]
	absentFirst bool
}

// OptionalCompare lifts a relation over T to one over Optional[T],
// for callers that prefer value-typed absence over pointers.  Two
// absent values are equal; an absent value sorts before every present
// value if absentFirst, and after otherwise; two present values
// compare by inner.
//
// It is invalid (runtime-panic) to call OptionalCompare with a nil
// inner relation.
func OptionalCompare[T any](inner ordering.Ordering[T], absentFirst bool) ordering.Ordering[Optional[T]] {
	if inner == nil {
		panic(fmt.Errorf("containers.OptionalCompare: nil inner ordering"))
	}
	return optionalOrdering[T]{inner: inner, absentFirst: absentFirst}
}

func (o optionalOrdering[T]) Compare(a, b Optional[T]) int {
	switch {
	case !a.OK && !b.OK:
		return 0
	case !a.OK:
		if o.absentFirst {
			return -1
		}
		return 1
	case !b.OK:
		if o.absentFirst {
			return 1
		}
		return -1
	default:
		return o.inner.Compare(a.Val, b.Val)
	}
}

func (o optionalOrdering[T]) Equal(other ordering.Ordering[Optional[T]]) bool {
	p, ok := other.(optionalOrdering[T])
	return ok && o.absentFirst == p.absentFirst && o.inner.Equal(p.inner)
}

func (o optionalOrdering[T]) Hash() uint64 {
	kind := "containers.OptionalCompare/absent-last"
	if o.absentFirst {
		kind = "containers.OptionalCompare/absent-first"
	}
	return ordering.KindHash(kind, o.inner.Hash())
}
