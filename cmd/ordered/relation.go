// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/pflag"

	"git.lukeshu.com/go/ordered/lib/containers"
	"git.lukeshu.com/go/ordered/lib/ordering"
	"git.lukeshu.com/go/ordered/lib/textui"
)

// kindOrder ranks the scalar kinds: null, then booleans, then
// numbers, then strings.
var kindOrder = func() *ordering.GivenOrdering[jsonKind] {
	o, err := ordering.Given(kindNull, kindBool, kindNumber, kindString)
	if err != nil {
		panic(err)
	}
	return o
}()

// valueOrder sorts jsonValues by kind rank, then within a kind by the
// value itself.  Each per-kind projection returns the zero value for
// values of the other kinds, so by the time a component is consulted
// (both kinds equal) it is either the one that matches, or a tie.
var valueOrder = ordering.Compound(
	ordering.ByKey(func(v jsonValue) jsonKind { return v.Kind }, kindOrder),
	ordering.ByKey(func(v jsonValue) bool { return v.Bool }, ordering.NativeBool[bool]()),
	ordering.ByNativeKey(func(v jsonValue) float64 { return v.Number }),
	ordering.ByNativeKey(func(v jsonValue) string { return v.Str }),
)

func keyOrder(name string) (ordering.Ordering[jsonValue], error) {
	switch name {
	case "value":
		return valueOrder, nil
	case "kind":
		return ordering.ByKey(func(v jsonValue) jsonKind { return v.Kind }, kindOrder), nil
	case "length":
		return containers.CachedKeyOrdering(textui.Tunable(128),
			func(v jsonValue) int { return len(v.Str) },
			ordering.Native[int]()), nil
	default:
		return nil, fmt.Errorf("invalid --key=%q: must be \"value\", \"kind\", or \"length\"", name)
	}
}

// relationFlags are the flags that describe an ordering; `sort` and
// `spew-ordering` take the same set.
type relationFlags struct {
	keys    []string
	nulls   string
	reverse bool
}

func (o *relationFlags) addTo(flags *pflag.FlagSet) {
	flags.StringArrayVar(&o.keys, "key", nil,
		"Sort by `key` (\"value\", \"kind\", or \"length\"); may be repeated to break ties")
	flags.StringVar(&o.nulls, "nulls", "first",
		"Whether JSON nulls sort before or after all other values (\"first\" or \"last\")")
	flags.BoolVar(&o.reverse, "reverse", false,
		"Reverse the ordering")
}

func (o relationFlags) build() (ordering.Ordering[*jsonValue], error) {
	components := make([]ordering.Ordering[jsonValue], 0, len(o.keys))
	for _, name := range o.keys {
		component, err := keyOrder(name)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	if len(components) == 0 {
		components = append(components, valueOrder)
	}
	inner := ordering.Compound(components...)

	var ret ordering.Ordering[*jsonValue]
	switch o.nulls {
	case "first":
		ret = ordering.NullsFirst(inner)
	case "last":
		ret = ordering.NullsLast(inner)
	default:
		return nil, fmt.Errorf("invalid --nulls=%q: must be \"first\" or \"last\"", o.nulls)
	}

	if o.reverse {
		ret = ordering.Reverse(ret)
	}
	return ret, nil
}

// countingOrdering counts how many times Compare is called, so that
// commands can report how much work a sort did.  The count is
// instrumentation, not configuration; it does not participate in
// Equal or Hash.
type countingOrdering[T any] struct {
	inner ordering.Ordering[T]
	n     atomic.Int64
}

var _ ordering.Ordering[*jsonValue] = (*countingOrdering[*jsonValue])(nil)

// Compare implements ordering.Ordering.
func (o *countingOrdering[T]) Compare(a, b T) int {
	o.n.Add(1)
	return o.inner.Compare(a, b)
}

func (o *countingOrdering[T]) Count() int64 {
	return o.n.Load()
}

// Equal implements ordering.Ordering.
func (o *countingOrdering[T]) Equal(other ordering.Ordering[T]) bool {
	p, ok := other.(*countingOrdering[T])
	return ok && o.inner.Equal(p.inner)
}

// Hash implements ordering.Ordering.
func (o *countingOrdering[T]) Hash() uint64 {
	return ordering.KindHash("main.countingOrdering", o.inner.Hash())
}
