// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

// FullKey reconstructs the complete key represented by n by walking up
// to the root, then copying edge labels into a single pre-sized buffer
// from the tail end forward — O(depth + total label length), per 4.2.7.
func (t *Tree[D]) FullKey(n *Node[D]) string {
	if n == t.root {
		return ""
	}

	total := 0
	for p := n; p != t.root; p = p.parent {
		total += p.edgeLabel.Length()
	}

	buf := make([]byte, total)
	pos := total
	for p := n; p != t.root; p = p.parent {
		l := p.edgeLabel.Length()
		pos -= l
		p.edgeLabel.CopyInto(buf[pos : pos+l])
	}
	return string(buf)
}
