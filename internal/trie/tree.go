// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

import (
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/segment"
)

// SkipBudget bounds how many non-collapsible ancestors Balance will walk
// past before giving up, per spec's "bound constant, e.g. 5". Residual
// imbalance left behind is tolerated and swept up by later mutations.
const SkipBudget = 5

// Tree is a compressed 12-ary trie: path-compressed edges, opaque
// per-node payload of type D. The zero value is not usable; construct
// with New.
type Tree[D any] struct {
	root *Node[D]
	pool *nodePool[D]
}

// New returns an empty Tree.
func New[D any]() *Tree[D] {
	t := &Tree[D]{pool: newNodePool[D]()}
	t.root = t.pool.Get()
	return t
}

// Root returns the tree's root node. The root never carries data and its
// EdgeLen is always 0.
func (t *Tree[D]) Root() *Node[D] {
	return t.root
}

// IsRoot reports whether n is t's root.
func (t *Tree[D]) IsRoot(n *Node[D]) bool {
	return n == t.root
}

// Insert returns the node representing key, creating intermediate and
// leaf nodes as needed. Per 4.2.2: a Found landing is returned as-is; a
// Substr landing has its edge split at the match point; a NotFound with
// a Partial edge match is split first and then a new leaf is attached
// for the unmatched suffix; a NotFound with a Full edge match attaches a
// new leaf directly.
func (t *Tree[D]) Insert(key string) *Node[D] {
	r := t.Find(key)
	switch r.Outcome {
	case Found:
		return r.Landing
	case Substr:
		return t.splitEdge(r.Landing, r.MatchedEdgeLen)
	default: // NotFound
		if r.EdgeMatch == Partial {
			m := t.splitEdge(r.Landing, r.MatchedEdgeLen)
			return t.attachLeaf(m, key[r.MatchedKeyLen:])
		}
		return t.attachLeaf(r.Landing, key[r.MatchedKeyLen:])
	}
}

// attachLeaf creates a new leaf under parent holding edge label suffix,
// indexed by suffix's first digit. suffix must be non-empty.
func (t *Tree[D]) attachLeaf(parent *Node[D], suffix string) *Node[D] {
	leaf := t.pool.Get()
	leaf.edgeLabel = segment.FromDigits(suffix)
	leaf.parent = parent
	parent.children.Set(digitset.IndexOf(suffix[0]), leaf)
	return leaf
}

// splitEdge splits n's incoming edge at offset k (0 < k < n's edge
// length): a new intermediate node m takes over the edge's first k
// digits (reusing n's Segment), n keeps the remaining suffix, and m is
// wired into n's former parent slot with n reattached below it. Returns
// m, per 4.2.3.
func (t *Tree[D]) splitEdge(n *Node[D], k int) *Node[D] {
	suffix := n.edgeLabel.SplitAt(k)

	m := t.pool.Get()
	m.edgeLabel = n.edgeLabel // m takes the (now length-k) prefix object
	n.edgeLabel = suffix

	m.parent = n.parent
	firstDigit := digitset.IndexOf(m.edgeLabel.Byte(0))
	m.parent.children.Set(firstDigit, m)

	n.parent = m
	m.children.Set(digitset.IndexOf(n.edgeLabel.Byte(0)), n)

	return m
}

// Balance walks upward from start, removing redundant data-less leaves
// and merging data-less single-child nodes into their child, stopping at
// the root or after SkipBudget ancestors that are neither, per 4.2.4.
func (t *Tree[D]) Balance(start *Node[D]) {
	cur := start
	skips := 0
	for cur != nil && cur != t.root && skips < SkipBudget {
		parent := cur.parent
		switch {
		case !cur.HasData && cur.children.Len() == 0:
			parent.children.Delete(digitset.IndexOf(cur.edgeLabel.Byte(0)))
			t.pool.Put(cur)
			cur = parent

		case !cur.HasData && cur.children.Len() == 1:
			_, child := cur.children.sole()
			cur.edgeLabel.Concat(child.edgeLabel)
			child.edgeLabel = cur.edgeLabel
			child.parent = parent
			parent.children.Set(digitset.IndexOf(child.edgeLabel.Byte(0)), child)
			t.pool.Put(cur)
			cur = parent

		default:
			skips++
			cur = parent
		}
	}
}
