// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package phonefwd provides a mutable database of phone-number
// forwardings, directed mappings from one dialed prefix to another.
//
// The database is a digit trie over the extended alphabet
// '0'..'9', '*', '#' with a per-node timestamp protocol: a bulk
// invalidation by prefix only stamps a logical time on one node,
// in O(len(prefix)), and queries decide lazily which forwardings
// are still active. Reverse lookups are answered from back-edge
// queues kept at the target nodes, filtered lazily for records
// invalidated in the meantime.
//
// A Table is not safe for concurrent use, callers that share one
// must serialise access externally. Distinct tables are fully
// independent.
package phonefwd

import "github.com/gaissmai/phonefwd/internal/digit"

// Table is a phone-number forwarding table.
// The zero value is ready to use.
//
// A Table must not be copied by value after first use.
type Table struct {
	// the root node, created lazily on first insert or remove
	root *node

	// logical clock, advanced on every Insert and Remove,
	// times starting at 1 order the recency of operations
	clock uint64

	// number of prefixes with a forwarding installed
	size int
}

// init the root node.
func (t *Table) init() {
	if t.root == nil {
		t.root = newNode(0, nil)
	}
}

// Size returns the number of prefixes that have had a forwarding
// installed. Overwriting a forwarding doesn't change the count and
// Remove is lazy, shadowed forwardings still count until the table
// is dropped.
func (t *Table) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert installs the forwarding src -> dst, overwriting any
// forwarding previously installed at src.
//
// Reports whether the forwarding was installed, it is not when t is
// nil, src or dst is not a valid number or src equals dst. On false
// the table is unchanged.
func (t *Table) Insert(src, dst string) bool {
	if t == nil || src == dst || !digit.IsValid(src) || !digit.IsValid(dst) {
		return false
	}
	t.init()

	s := t.root.findOrCreate(src)
	d := t.root.findOrCreate(dst)

	// advance the clock only after both paths exist
	t.clock++

	if s.fwdTime == 0 {
		t.size++
	}

	s.fwd = d
	s.fwdTime = t.clock

	d.backEdges = append(d.backEdges, backEdge{from: s, time: t.clock})

	return true
}

// Remove invalidates every forwarding installed before this call
// whose source starts with prefix. A no-op if t is nil or prefix is
// not a valid number.
//
// Nothing is deleted physically, only the prefix node is stamped
// with the current clock and queries skip the shadowed forwardings
// of its subtree lazily.
func (t *Table) Remove(prefix string) {
	if t == nil || !digit.IsValid(prefix) {
		return
	}
	t.init()

	n := t.root.findOrCreate(prefix)

	t.clock++
	n.delTime = t.clock
}

// Lookup resolves num through the deepest still-active forwarding
// whose source is a prefix of num, substituting the source prefix
// with the target prefix. If no forwarding applies the result is
// num unchanged.
//
// Returns nil if t is nil, an empty sequence if num is not a valid
// number and a single-element sequence otherwise.
func (t *Table) Lookup(num string) *Numbers {
	if t == nil {
		return nil
	}
	if !digit.IsValid(num) {
		return &Numbers{}
	}

	last := t.lastActiveFwd(num)
	if last == nil {
		return &Numbers{nums: []string{num}}
	}

	return &Numbers{nums: []string{last.fwd.number() + num[last.depth:]}}
}

// lastActiveFwd walks the existing path of num and returns the
// deepest node holding an active forwarding, or nil.
//
// A forwarding on a node is active iff it is newer than every
// invalidation stamped on the path from the root down to the node,
// so the walk tracks the running maximum of the delete times.
func (t *Table) lastActiveFwd(num string) *node {
	n := t.root
	if n == nil {
		return nil
	}

	var last *node
	var maxDel uint64

	for i := 0; ; i++ {
		maxDel = max(maxDel, n.delTime)

		if n.fwd != nil && n.fwdTime > maxDel {
			last = n
		}

		if i == len(num) {
			break
		}

		child, ok := n.children.Get(uint(digit.Index(num[i])))
		if !ok {
			// the remaining suffix has no nodes and therefore
			// no more candidates
			break
		}
		n = child
	}

	return last
}

// Reverse enumerates every number x whose Lookup could resolve to
// num through a forwarding whose target is a prefix of num, plus
// num itself.
//
// Returns nil if t is nil, an empty sequence if num is not a valid
// number and otherwise a sequence sorted under the extended order
// with duplicates removed.
//
// As a side effect the back-edge queues along the path of num are
// purged of stale records.
func (t *Table) Reverse(num string) *Numbers {
	if t == nil {
		return nil
	}
	if !digit.IsValid(num) {
		return &Numbers{}
	}

	res := &Numbers{nums: []string{num}}

	n := t.root
	for k := 0; n != nil && k < len(num); k++ {
		child, ok := n.children.Get(uint(digit.Index(num[k])))
		if !ok {
			break
		}
		n = child

		// n represents the prefix num[:k+1], every live back-edge
		// contributes its source prefix plus the unmatched suffix
		n.collectBackEdges(res, num[k+1:])
	}

	res.Sort()
	res.Compact()

	return res
}
