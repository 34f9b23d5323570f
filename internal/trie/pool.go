// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

import (
	"sync"
	"sync/atomic"
)

// nodePool is a type-safe wrapper around sync.Pool specialized for
// *Node[D], tracking allocation counts the way the teacher's pool.go
// does. Every tree mutation that frees a node (balance, delete_subtree)
// returns it here instead of letting the garbage collector reclaim it,
// since insert-heavy workloads churn nodes constantly.
type nodePool[D any] struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

func newNodePool[D any]() *nodePool[D] {
	p := &nodePool[D]{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return new(Node[D])
	}
	return p
}

// Get retrieves a *Node[D] from the pool, or creates a new one.
func (p *nodePool[D]) Get() *Node[D] {
	p.currentLive.Add(1)
	return p.Pool.Get().(*Node[D])
}

// Put resets n and returns it to the pool for reuse.
func (p *nodePool[D]) Put(n *Node[D]) {
	p.currentLive.Add(-1)
	n.reset()
	p.Pool.Put(n)
}

// Stats reports the number of currently live (checked-out) nodes and the
// total ever allocated by this pool.
func (p *nodePool[D]) Stats() (live, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}
