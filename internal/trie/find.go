// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"

// EdgeMatch reports how much of a node's incoming edge label was matched
// during a Find.
type EdgeMatch int

const (
	// Full means the entire edge label was consumed.
	Full EdgeMatch = iota
	// Partial means the walk stopped partway through the edge label.
	Partial
)

// Outcome classifies the result of a Find.
type Outcome int

const (
	// Found: the key was fully matched and lands exactly on a node
	// boundary (the landing node's incoming edge, if any, matched in
	// full).
	Found Outcome = iota
	// Substr: the key was fully matched but the landing node's edge
	// only partially matched — the key is a strict prefix of some
	// stored key reachable from the landing node.
	Substr
	// NotFound: the key could not be fully matched.
	NotFound
)

// FindResult is the outcome of walking a Tree for a key.
type FindResult[D any] struct {
	Landing        *Node[D]
	MatchedKeyLen  int
	MatchedEdgeLen int
	EdgeMatch      EdgeMatch
	Outcome        Outcome
}

// Find walks t from the root consuming key, one edge at a time, per the
// navigation rules: at each node, pick the child whose edge starts with
// the current key digit, match along that edge, and stop when the key
// ends, the edge ends (continuing at the next node), no child matches,
// or a mismatch occurs within an edge.
func (t *Tree[D]) Find(key string) FindResult[D] {
	node := t.root
	pos := 0

	for {
		if pos == len(key) {
			return FindResult[D]{
				Landing:        node,
				MatchedKeyLen:  pos,
				MatchedEdgeLen: node.EdgeLen(),
				EdgeMatch:      Full,
				Outcome:        Found,
			}
		}

		idx := digitset.IndexOf(key[pos])
		child := node.children.Get(idx)
		if child == nil {
			return FindResult[D]{
				Landing:        node,
				MatchedKeyLen:  pos,
				MatchedEdgeLen: node.EdgeLen(),
				EdgeMatch:      Full,
				Outcome:        NotFound,
			}
		}

		remaining := key[pos:]
		matched, atEnd := child.edgeLabel.MatchPrefix(remaining)
		if atEnd {
			// Whole edge consumed (matched == edge length); move on to
			// the child and keep walking.
			pos += matched
			node = child
			continue
		}

		pos += matched
		if matched == len(remaining) {
			// Key exhausted strictly inside the edge: the key is a
			// prefix of whatever lives under this edge.
			return FindResult[D]{
				Landing:        child,
				MatchedKeyLen:  pos,
				MatchedEdgeLen: matched,
				EdgeMatch:      Partial,
				Outcome:        Substr,
			}
		}

		// Genuine mismatch strictly inside the edge.
		return FindResult[D]{
			Landing:        child,
			MatchedKeyLen:  pos,
			MatchedEdgeLen: matched,
			EdgeMatch:      Partial,
			Outcome:        NotFound,
		}
	}
}
