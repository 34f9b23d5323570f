// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

// Package trie implements the compressed, path-shortened 12-ary trie that
// indexes numeric prefixes (spec's compressed-trie engine, ~45% of the
// system). It is the generic engine shared by the forward and backward
// trees of a forwarding base, and by the one-shot sort_unique helper.
//
// The node layout follows the teacher's (gaissmai/bart) node.go: a
// popcount-ranked, bitset-backed sparse array standing in for a dense
// fixed-width array, here scaled from a 256-wide byte stride down to the
// 12-symbol digit alphabet.
package trie

import (
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/segment"
)

// Node is one node of a Tree. D is the opaque payload type: a ForwardEntry
// for forward trees, a *dlist.List of forward-node references for
// backward trees, or the inserted string itself for the one-shot
// sort_unique trie. The zero value is not meaningful on its own; nodes are obtained
// from a Tree's internal pool.
type Node[D any] struct {
	edgeLabel *segment.Segment // nil only at the root
	children  childSet[D]
	parent    *Node[D]

	Data    D
	HasData bool
}

// childSet is the sparse, popcount-compressed array of up to 12 child
// pointers, one per digit index. Mirrors the teacher's childTree[V]:
// a *bitset.BitSet marking occupied slots plus a slice holding the
// occupants in ascending slot order, so iteration is already sorted.
type childSet[D any] struct {
	addrs *bitset.BitSet
	nodes []*Node[D]
}

func (c *childSet[D]) init() {
	if c.addrs == nil {
		c.addrs = bitset.New(digitset.Size)
	}
}

func (c *childSet[D]) rank(idx uint) int {
	return int(c.addrs.Rank(idx)) - 1
}

// Get returns the child at digit index idx, or nil if absent.
func (c *childSet[D]) Get(idx int) *Node[D] {
	if c.addrs == nil || !c.addrs.Test(uint(idx)) {
		return nil
	}
	return c.nodes[c.rank(uint(idx))]
}

// Set inserts or overwrites the child at digit index idx.
func (c *childSet[D]) Set(idx int, n *Node[D]) {
	c.init()
	b := uint(idx)
	if c.addrs.Test(b) {
		c.nodes[c.rank(b)] = n
		return
	}
	c.addrs.Set(b)
	c.nodes = slices.Insert(c.nodes, c.rank(b), n)
}

// Delete removes the child at digit index idx, if any.
func (c *childSet[D]) Delete(idx int) {
	if c.addrs == nil || !c.addrs.Test(uint(idx)) {
		return
	}
	r := c.rank(uint(idx))
	c.nodes = slices.Delete(c.nodes, r, r+1)
	c.addrs.Clear(uint(idx))
	c.addrs.Compact()
}

// Len returns the number of occupied child slots.
func (c *childSet[D]) Len() int {
	return len(c.nodes)
}

// All returns the occupied children in ascending digit-index order. The
// slice is shared with the childSet's internal storage and must not be
// retained past the next mutation.
func (c *childSet[D]) All() []*Node[D] {
	return c.nodes
}

// sole returns the single occupied (digit index, child) pair. Only valid
// when Len() == 1.
func (c *childSet[D]) sole() (int, *Node[D]) {
	idx, _ := c.addrs.NextSet(0)
	return int(idx), c.nodes[0]
}

// reset clears a node back to its zero-ish state for reuse from the pool.
func (n *Node[D]) reset() {
	var zero D
	n.edgeLabel = nil
	n.parent = nil
	n.Data = zero
	n.HasData = false
	if n.children.addrs != nil {
		n.children.addrs.ClearAll()
	}
	n.children.nodes = n.children.nodes[:0]
}

// Parent returns n's parent, or nil at the root.
func (n *Node[D]) Parent() *Node[D] {
	return n.parent
}

// EdgeLen returns the length of n's incoming edge label, or 0 at the
// root (which has none).
func (n *Node[D]) EdgeLen() int {
	if n.edgeLabel == nil {
		return 0
	}
	return n.edgeLabel.Length()
}
