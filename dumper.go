// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package phonefwd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/phonefwd/internal/digit"
)

// dumpString is just a wrapper for dump.
func (t *Table) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)
	return w.String()
}

// dump the trie to w.
// Useful during development and debugging.
//
//	Output after Insert("12", "34") and Remove("1"):
//
//	clock: 2 size: 1
//
//	[ROOT] depth: 0 path: []
//	childs(#2): 1 3
//
//	.[NODE] depth: 1 path: [1] del: 2
//	.childs(#1): 2
//
//	..[NODE] depth: 2 path: [12] fwd: 34 time: 1
//	..childs(#0):
//
//	.[NODE] depth: 1 path: [3]
//	.childs(#1): 4
//
//	..[NODE] depth: 2 path: [34]
//	..backs(#1): 12@1
//	..childs(#0):
func (t *Table) dump(w io.Writer) {
	fmt.Fprintf(w, "clock: %d size: %d\n", t.clock, t.size)
	if t.root != nil {
		t.root.dumpRec(w, nil)
	}
}

// dumpRec, rec-descent the trie.
func (n *node) dumpRec(w io.Writer, path []byte) {
	n.dumpNode(w, path)

	for dig, child := range n.children.All() {
		child.dumpRec(w, append(path, digit.Byte(uint8(dig))))
	}
}

// dumpNode prints one node to w.
func (n *node) dumpNode(w io.Writer, path []byte) {
	indent := strings.Repeat(".", n.depth)

	kind := "NODE"
	if n.parent == nil {
		kind = "ROOT"
	}

	fmt.Fprintf(w, "\n%s[%s] depth: %d path: [%s]", indent, kind, n.depth, path)
	if n.fwd != nil {
		fmt.Fprintf(w, " fwd: %s time: %d", n.fwd.number(), n.fwdTime)
	}
	if n.delTime != 0 {
		fmt.Fprintf(w, " del: %d", n.delTime)
	}
	fmt.Fprintln(w)

	if len(n.backEdges) != 0 {
		fmt.Fprintf(w, "%sbacks(#%d):", indent, len(n.backEdges))
		for _, be := range n.backEdges {
			fmt.Fprintf(w, " %s@%d", be.from.number(), be.time)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%schilds(#%d):", indent, n.children.Len())
	for dig := range n.children.All() {
		fmt.Fprintf(w, " %c", digit.Byte(uint8(dig)))
	}
	fmt.Fprintln(w)
}
