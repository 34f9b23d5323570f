// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

// Package phfwd implements a forwarding base: a pair of cross-linked
// compressed tries mapping phone-number prefixes to the prefixes they
// redirect to, and back again.
package phfwd

import (
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/dlist"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/trie"
)

// ForwardEntry is the payload of a data-bearing forward-tree node: the
// backward-tree node it redirects to, and the position of this entry in
// that node's list of redirecting sources (so the pairing can be undone
// in O(1) without a list scan).
type ForwardEntry struct {
	target  *trie.Node[BackwardData]
	backRef *dlist.Element[*trie.Node[ForwardEntry]]
}

// BackwardData is the payload of a data-bearing backward-tree node: the
// list of forward-tree nodes that redirect to it. A type alias (rather
// than a second generic struct) sidesteps the mutual recursion between
// ForwardEntry and the backward tree's element type — both resolve to
// concrete, non-recursive instantiations of trie.Node and dlist.List.
type BackwardData = *dlist.List[*trie.Node[ForwardEntry]]

// ForwardBase holds one base's forward and backward tries. The zero
// value is not usable; construct with New.
type ForwardBase struct {
	forward  *trie.Tree[ForwardEntry]
	backward *trie.Tree[BackwardData]
}

// New returns an empty forwarding base.
func New() *ForwardBase {
	return &ForwardBase{
		forward:  trie.New[ForwardEntry](),
		backward: trie.New[BackwardData](),
	}
}

// locate finds the node representing the longest prefix of key that has
// a full edge-match boundary in t (landing mid-edge is backed off to the
// parent), per phfwdSetPointersForGettingText. It returns that node and
// how many bytes of key were consumed reaching it.
func locate[D any](t *trie.Tree[D], key string) (*trie.Node[D], int) {
	r := t.Find(key)
	if r.Outcome != trie.Found && r.EdgeMatch == trie.Partial {
		return r.Landing.Parent(), r.MatchedKeyLen - r.MatchedEdgeLen
	}
	return r.Landing, r.MatchedKeyLen
}

// deleteBackwardEntry unlinks fd from its target's redirecting-sources
// list, tearing the list down and rebalancing the backward node if that
// empties it. Grounded on phfwdDeleteNodeFromBackwardTree.
func deleteBackwardEntry(backward *trie.Tree[BackwardData], fd ForwardEntry) {
	list := fd.target.Data
	list.Remove(fd.backRef)
	if list.Len() == 0 {
		fd.target.HasData = false
		var zero BackwardData
		fd.target.Data = zero
		backward.Balance(fd.target)
	}
}
