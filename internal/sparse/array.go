// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array
// with popcount compression.
//
// A bitset records which slots are occupied, the items
// live gapless in a slice. The rank of a set bit is the
// slice index of its item.
package sparse

import (
	"iter"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Array, a generic sparse array with popcount compression
// and payload T, slots are addressed by small uints.
type Array[T any] struct {
	addrs *bitset.BitSet
	items []T
}

// New returns an initialized sparse array, the BitSet
// has to be initialized.
func New[T any]() *Array[T] {
	return &Array[T]{
		addrs: bitset.New(0), // init BitSet, zero size
		items: nil,
	}
}

// rank is the key of the popcount compression algorithm,
// mapping between bitset index and slice index.
func (a *Array[T]) rank(i uint) int {
	return int(a.addrs.Rank(i)) - 1
}

// Len returns the number of items in the sparse array.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Get the value at i from the sparse array.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.addrs.Test(i) {
		return a.items[a.rank(i)], true
	}
	return
}

// MustGet, use it only after a successful test
// or the behavior is undefined, maybe it panics.
func (a *Array[T]) MustGet(i uint) T {
	return a.items[a.rank(i)]
}

// InsertAt a value at i into the sparse array.
// If the slot is already occupied, overwrite the value and return true.
func (a *Array[T]) InsertAt(i uint, value T) (exists bool) {
	// slot exists, overwrite value
	if a.addrs.Test(i) {
		a.items[a.rank(i)] = value
		return true
	}

	// new, insert into bitset and slice
	a.addrs.Set(i)
	a.items = slices.Insert(a.items, a.rank(i), value)

	return false
}

// All returns an iterator over all occupied slots in
// ascending address order, yielding address and value.
func (a *Array[T]) All() iter.Seq2[uint, T] {
	return func(yield func(uint, T) bool) {
		i, ok := a.addrs.NextSet(0)
		for rank := 0; ok; rank++ {
			if !yield(i, a.items[rank]) {
				return
			}
			i, ok = a.addrs.NextSet(i + 1)
		}
	}
}
