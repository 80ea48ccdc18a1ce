// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phonefwd

import (
	"github.com/gaissmai/phonefwd/internal/digit"
	"github.com/gaissmai/phonefwd/internal/sparse"
)

// backEdge records one forwarding into the node that holds it.
// The record goes stale when the forwarding on from is overwritten
// or shadowed by a later Remove, stale records are dropped lazily
// during Reverse.
type backEdge struct {
	from *node  // source of the forwarding
	time uint64 // clock value when the forwarding was installed
}

// node, a trie level node, one per materialised prefix.
//
// The children array has the branching factor of the alphabet (12),
// popcount-compressed. Nodes are never deleted individually, parent
// pointers and back-edge references therefore stay valid for the
// lifetime of the table.
type node struct {
	children *sparse.Array[*node]

	parent *node // nil for the root
	fwd    *node // target of the forwarding installed here, or nil

	digit uint8 // alphabet index of the digit this node contributes
	depth int   // length of the prefix, root is 0

	fwdTime uint64 // clock value of the last Insert with this node as source
	delTime uint64 // clock value of the last Remove rooted exactly here

	backEdges []backEdge
}

// newNode, the sparse child array has to be initialized.
func newNode(dig uint8, parent *node) *node {
	n := &node{
		children: sparse.New[*node](),
		parent:   parent,
		digit:    dig,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	return n
}

// findOrCreate walks the path of num from n, materialising
// missing nodes, and returns the terminal node.
// num must be a valid number.
func (n *node) findOrCreate(num string) *node {
	for i := 0; i < len(num); i++ {
		dig := uint8(digit.Index(num[i]))

		child, ok := n.children.Get(uint(dig))
		if !ok {
			child = newNode(dig, n)
			n.children.InsertAt(uint(dig), child)
		}
		n = child
	}
	return n
}

// number assembles the prefix this node represents by walking
// the parent chain bottom-up.
func (n *node) number() string {
	buf := make([]byte, n.depth)
	for i := n.depth - 1; i >= 0; i-- {
		buf[i] = digit.Byte(n.digit)
		n = n.parent
	}
	return string(buf)
}

// live reports whether the back-edge still denotes an active
// forwarding: not overwritten on the source and no node from the
// source up to the root invalidated after it was installed.
func (be backEdge) live() bool {
	if be.time != be.from.fwdTime {
		return false
	}
	for n := be.from; n != nil; n = n.parent {
		if n.delTime > be.time {
			return false
		}
	}
	return true
}

// collectBackEdges appends to res one candidate pre-image per live
// back-edge, the source prefix concatenated with suffix, and drops
// the stale records from the queue. FIFO order is kept for the
// survivors.
func (n *node) collectBackEdges(res *Numbers, suffix string) {
	retained := n.backEdges[:0]
	for _, be := range n.backEdges {
		if !be.live() {
			continue
		}
		retained = append(retained, be)
		res.nums = append(res.nums, be.from.number()+suffix)
	}

	// zeroes the tail
	for i := len(retained); i < len(n.backEdges); i++ {
		n.backEdges[i] = backEdge{}
	}
	n.backEdges = retained
}
