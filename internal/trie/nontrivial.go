// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package trie

import (
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/segment"
)

// NonTrivialCount returns, modulo 2^W (plain uint wraparound), the count
// of length-goalLen digit strings over the digits named in mask that are
// "non-trivial": their walk down this trie passes through a data-bearing
// node at or before consuming goalLen digits. It is
// k^goalLen - avoid(root, goalLen), where avoid counts the complementary
// strings that hit no data anywhere along their length. See DESIGN.md's
// "Non-trivial count recurrence" entry for the derivation and the
// worked-scenario check.
//
// goalLen == 0 always returns 1 (the empty string is vacuously
// non-trivial here, independent of mask or tree content).
func (t *Tree[D]) NonTrivialCount(goalLen int, mask digitset.Mask) uint {
	if goalLen == 0 {
		return 1
	}

	k := uint(mask.Count())
	if k == 0 {
		return 0
	}

	total := ipow(k, uint(goalLen))
	avoided := avoid(t.root, uint(goalLen), mask, k)
	return total - avoided
}

// avoid returns the number of length-r masked-alphabet strings that,
// walked from cur, never land on a data-bearing node within those r
// digits. k is mask.Count(), passed down to avoid recomputing it at
// every node.
func avoid[D any](cur *Node[D], r uint, mask digitset.Mask, k uint) uint {
	if cur.HasData {
		return 0
	}
	if r == 0 {
		return 1
	}

	var total uint
	for d := 0; d < digitset.Size; d++ {
		if !mask.Test(d) {
			continue
		}
		child := cur.children.Get(d)
		if child == nil {
			total += ipow(k, r-1)
			continue
		}

		edgeLen := uint(child.edgeLabel.Length())
		consume := r
		if edgeLen < consume {
			consume = edgeLen
		}
		if !edgePrefixWithinMask(child.edgeLabel, int(consume), mask) {
			continue
		}
		if consume < edgeLen {
			// r runs out strictly inside the edge: exactly one way to
			// spend the remaining length, landing mid-edge (never
			// data-bearing).
			total += 1
			continue
		}
		total += avoid(child, r-edgeLen, mask, k)
	}
	return total
}

func edgePrefixWithinMask(edge *segment.Segment, consume int, mask digitset.Mask) bool {
	if edge.ContainsOnlyDigitsInMask(mask) {
		return true
	}
	for i := 0; i < consume; i++ {
		if !mask.Test(digitset.IndexOf(edge.Byte(i))) {
			return false
		}
	}
	return true
}

func ipow(base, exp uint) uint {
	result := uint(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
