// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

// Fold visits every data-bearing node of t in digit-lexicographic order
// of the key it represents, invoking fn on the node's data at first
// visit (before any of its descendants). Traversal is iterative via an
// explicit stack: children are pushed in descending digit-index order so
// they pop in ascending order, giving pre-order-with-data-first
// semantics without recursion. This ordering is what makes external
// radix sort (4.3.6) possible on top of Fold.
func (t *Tree[D]) Fold(fn func(D)) {
	stack := []*Node[D]{t.root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.HasData {
			fn(cur.Data)
		}

		children := cur.children.All()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
