// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package containers

import (
	"fmt"
	"io"

	"git.lukeshu.com/go/lowmemjson"

	"git.lukeshu.com/go/ordered/lib/ordering"
)

// Multiset counts occurrences of values drawn from the finite domain
// of a GivenOrdering.  Iteration and JSON encoding are in rank order,
// not insertion order.
//
// It is invalid (runtime-panic) to count a value that is outside of
// the domain; use Order().Rank to test membership first if the input
// is untrusted.
type Multiset[T comparable] struct {
	order  *ordering.GivenOrdering[T]
	counts map[T]uint
	total  uint
}

// NewMultiset returns a Multiset over the domain of the given order,
// pre-counting vals.
//
// It is invalid (runtime-panic) to call NewMultiset with a nil order.
func NewMultiset[T comparable](order *ordering.GivenOrdering[T], vals ...T) *Multiset[T] {
	if order == nil {
		panic(fmt.Errorf("containers.NewMultiset: nil order"))
	}
	ret := &Multiset[T]{
		order:  order,
		counts: make(map[T]uint, order.Len()),
	}
	for _, val := range vals {
		ret.Insert(val)
	}
	return ret
}

// MultisetFromSample derives the domain from the sample itself (rank
// = index of first occurrence, as with GivenFromSample) and counts
// every sample value.  An empty sample returns an *EmptyInputError.
func MultisetFromSample[T comparable](sample ...T) (*Multiset[T], error) {
	order, err := ordering.GivenFromSample(sample...)
	if err != nil {
		// An empty sample is the only way GivenFromSample can
		// fail; re-attribute it to this constructor.
		return nil, &ordering.EmptyInputError{Op: "containers.MultisetFromSample"}
	}
	return NewMultiset(order, sample...), nil
}

// Order returns the ordering that declares this Multiset's domain.
func (o *Multiset[T]) Order() *ordering.GivenOrdering[T] {
	return o.order
}

func (o *Multiset[T]) Add(val T, n uint) {
	if _, ok := o.order.Rank(val); !ok {
		panic(&ordering.IncomparableValueError{Value: val})
	}
	if n == 0 {
		return
	}
	o.counts[val] += n
	o.total += n
}

func (o *Multiset[T]) Insert(val T) {
	o.Add(val, 1)
}

// Remove decrements the count of val, which must be in the domain.
// Removing a value whose count is already 0 is a no-op.
func (o *Multiset[T]) Remove(val T) {
	if _, ok := o.order.Rank(val); !ok {
		panic(&ordering.IncomparableValueError{Value: val})
	}
	if o.counts[val] == 0 {
		return
	}
	o.counts[val]--
	o.total--
	if o.counts[val] == 0 {
		delete(o.counts, val)
	}
}

// Count returns the number of occurrences of val, which must be in
// the domain.
func (o *Multiset[T]) Count(val T) uint {
	if _, ok := o.order.Rank(val); !ok {
		panic(&ordering.IncomparableValueError{Value: val})
	}
	return o.counts[val]
}

// Len returns the number of distinct values with a non-zero count.
func (o *Multiset[T]) Len() int {
	return len(o.counts)
}

// Total returns the total number of occurrences across all values.
func (o *Multiset[T]) Total() uint {
	return o.total
}

// Range calls fn for each domain value with a non-zero count, in rank
// order, until fn returns false.
func (o *Multiset[T]) Range(fn func(val T, cnt uint) bool) {
	for _, val := range o.order.Domain() {
		cnt := o.counts[val]
		if cnt == 0 {
			continue
		}
		if !fn(val, cnt) {
			return
		}
	}
}

type multisetEntry[T comparable] struct {
	Val T
	Cnt uint
}

var (
	_ lowmemjson.Encodable = (*Multiset[int])(nil)
	_ lowmemjson.Decodable = (*Multiset[int])(nil)
)

// EncodeJSON writes the non-zero counts as an array of {Val, Cnt}
// objects, in rank order.
func (o *Multiset[T]) EncodeJSON(w io.Writer) error {
	entries := make([]multisetEntry[T], 0, len(o.counts))
	o.Range(func(val T, cnt uint) bool {
		entries = append(entries, multisetEntry[T]{Val: val, Cnt: cnt})
		return true
	})
	return lowmemjson.NewEncoder(w).Encode(entries)
}

// DecodeJSON reads counts in the EncodeJSON format.  The receiver
// must already have its domain set (via NewMultiset); a value outside
// of that domain is an error rather than a panic, since the input is
// external data.
func (o *Multiset[T]) DecodeJSON(r io.RuneScanner) error {
	if o.order == nil {
		return fmt.Errorf("containers.Multiset.DecodeJSON: no domain set on receiver")
	}
	c, _, _ := r.ReadRune()
	if c == 'n' {
		_, _, _ = r.ReadRune() // u
		_, _, _ = r.ReadRune() // l
		_, _, _ = r.ReadRune() // l
		o.counts = make(map[T]uint)
		o.total = 0
		return nil
	}
	_ = r.UnreadRune()
	o.counts = make(map[T]uint, o.order.Len())
	o.total = 0
	return lowmemjson.DecodeArray(r, func(r io.RuneScanner) error {
		var entry multisetEntry[T]
		if err := lowmemjson.NewDecoder(r).Decode(&entry); err != nil {
			return err
		}
		if _, ok := o.order.Rank(entry.Val); !ok {
			return fmt.Errorf("containers.Multiset.DecodeJSON: %w",
				&ordering.IncomparableValueError{Value: entry.Val})
		}
		o.counts[entry.Val] += entry.Cnt
		o.total += entry.Cnt
		return nil
	})
}
