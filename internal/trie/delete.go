// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"

// DeleteSubtree removes n and everything beneath it from the tree. For
// every data-bearing node visited, cleanup(data) is invoked before the
// node is freed, letting the caller (the forwarding base) tear down
// cross-tree references first. Traversal is iterative via an explicit
// work stack — per §9's recursion-avoidance note — rather than recursive,
// so it has no call-stack depth dependence on subtree size.
//
// If n is the tree's root, the root's children are torn down but the
// root node itself is kept (the tree becomes empty, not nil).
func (t *Tree[D]) DeleteSubtree(n *Node[D], cleanup func(D)) {
	if n == t.root {
		children := append([]*Node[D](nil), n.children.All()...)
		for _, c := range children {
			t.freeSubtree(c, cleanup)
		}
		n.children = childSet[D]{}
		return
	}

	parent := n.parent
	parent.children.Delete(digitset.IndexOf(n.edgeLabel.Byte(0)))
	t.freeSubtree(n, cleanup)
}

// freeSubtree frees n and its descendants (n is assumed already detached
// from its parent). Children are freed before parents: a post-order
// discipline reached by visiting in pre-order onto an explicit stack and
// then unwinding it in reverse, never by recursive descent.
func (t *Tree[D]) freeSubtree(n *Node[D], cleanup func(D)) {
	stack := []*Node[D]{n}
	order := make([]*Node[D], 0, 16)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)
		stack = append(stack, cur.children.All()...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		cur := order[i]
		if cur.HasData && cleanup != nil {
			cleanup(cur.Data)
		}
		t.pool.Put(cur)
	}
}
