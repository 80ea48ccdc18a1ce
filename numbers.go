// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phonefwd

import (
	"iter"
	"slices"

	"github.com/gaissmai/phonefwd/internal/digit"
)

// Numbers is an ordered sequence of phone numbers, the result type
// of Lookup and Reverse. The zero value is an empty sequence.
type Numbers struct {
	nums []string
}

// Len returns the number of elements, 0 for a nil sequence.
func (p *Numbers) Len() int {
	if p == nil {
		return 0
	}
	return len(p.nums)
}

// Get returns the element at index i.
// ok is false if i is out of range or p is nil.
func (p *Numbers) Get(i int) (num string, ok bool) {
	if p == nil || i < 0 || i >= len(p.nums) {
		return "", false
	}
	return p.nums[i], true
}

// Append adds num to the end of the sequence.
// Reports whether num was added, it is not when num is not a
// valid number.
func (p *Numbers) Append(num string) bool {
	if !digit.IsValid(num) {
		return false
	}
	p.nums = append(p.nums, num)
	return true
}

// All returns an iterator over the elements in sequence order.
func (p *Numbers) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if p == nil {
			return
		}
		for _, num := range p.nums {
			if !yield(num) {
				return
			}
		}
	}
}

// AsSlice returns the elements as a fresh slice.
func (p *Numbers) AsSlice() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.nums)
}

// Compare orders two numbers lexicographically under the extended
// order in which '*' and '#' follow '9'.
func Compare(a, b string) int {
	return digit.Compare(a, b)
}

// Sort sorts the sequence under the extended order in which
// '*' and '#' follow '9'. The sort is stable.
func (p *Numbers) Sort() {
	if p == nil {
		return
	}
	slices.SortStableFunc(p.nums, digit.Compare)
}

// Compact collapses runs of adjacent equal elements to one,
// callers sort first to deduplicate the whole sequence.
func (p *Numbers) Compact() {
	if p == nil {
		return
	}
	p.nums = slices.Compact(p.nums)
}
