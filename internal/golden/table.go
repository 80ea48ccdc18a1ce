// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a simple and slow forwarding table
// as a golden reference for phonefwd.
package golden

import (
	"slices"
	"strings"

	"github.com/gaissmai/phonefwd/internal/digit"
)

// Rule is one installed forwarding with its logical time.
type Rule struct {
	Src  string
	Dst  string
	Time uint64
}

// Del is one bulk invalidation with its logical time.
type Del struct {
	Prefix string
	Time   uint64
}

// Table is the slow reference implementation, rules live in a map
// keyed by source, invalidations in a plain slice, and every query
// scans them all.
type Table struct {
	rules map[string]Rule // latest forwarding per source
	dels  []Del
	clock uint64
}

// Insert installs src -> dst, latest insert per source wins.
func (g *Table) Insert(src, dst string) bool {
	if src == dst || !digit.IsValid(src) || !digit.IsValid(dst) {
		return false
	}
	if g.rules == nil {
		g.rules = map[string]Rule{}
	}
	g.clock++
	g.rules[src] = Rule{Src: src, Dst: dst, Time: g.clock}
	return true
}

// Remove records a bulk invalidation for prefix.
func (g *Table) Remove(prefix string) {
	if !digit.IsValid(prefix) {
		return
	}
	g.clock++
	g.dels = append(g.dels, Del{Prefix: prefix, Time: g.clock})
}

// active reports whether r is not shadowed by a later invalidation
// covering its source.
func (g *Table) active(r Rule) bool {
	for _, d := range g.dels {
		if d.Time > r.Time && strings.HasPrefix(r.Src, d.Prefix) {
			return false
		}
	}
	return true
}

// Lookup resolves num through the active rule with the longest
// source prefix, or returns num unchanged.
func (g *Table) Lookup(num string) string {
	if !digit.IsValid(num) {
		return ""
	}

	best := Rule{}
	found := false
	for src, r := range g.rules {
		if !strings.HasPrefix(num, src) || !g.active(r) {
			continue
		}
		if !found || len(src) > len(best.Src) {
			best = r
			found = true
		}
	}

	if !found {
		return num
	}
	return best.Dst + num[len(best.Src):]
}

// Reverse returns num and every pre-image of num under the active
// rules, sorted under the extended order and deduplicated.
func (g *Table) Reverse(num string) []string {
	if !digit.IsValid(num) {
		return nil
	}

	out := []string{num}
	for _, r := range g.rules {
		if g.active(r) && strings.HasPrefix(num, r.Dst) {
			out = append(out, r.Src+num[len(r.Dst):])
		}
	}

	slices.SortStableFunc(out, digit.Compare)
	return slices.Compact(out)
}
