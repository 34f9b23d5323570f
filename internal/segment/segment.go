// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

// Package segment implements the chunked, rope-like digit sequence used to
// store trie edge labels (spec §4.1). Chunks cap the work a single split or
// merge can do; each chunk also carries its own digit-presence mask so a
// node's full mask is the union of its chunk masks.
package segment

import (
	"strings"

	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
)

// Cap bounds the number of digits a single chunk may hold.
const Cap = 256

type chunk struct {
	digits []byte
	mask   digitset.Mask
	next   *chunk
}

func newChunk(digits []byte) *chunk {
	c := &chunk{digits: digits}
	for _, d := range digits {
		c.mask = c.mask.With(digitset.IndexOf(d))
	}
	return c
}

// Segment is a mutable, ordered sequence of alphabet digits, stored as a
// singly linked chain of chunks of at most Cap digits each.
type Segment struct {
	head, tail *chunk
	length     int
}

// FromDigits builds a segment covering s. s must be non-empty; callers
// (internal/trie) never split an edge into an empty label, so this is a
// programming-error panic rather than a recoverable error.
func FromDigits(s string) *Segment {
	if len(s) == 0 {
		panic("segment: FromDigits called with empty string")
	}

	seg := &Segment{}
	for i := 0; i < len(s); i += Cap {
		end := i + Cap
		if end > len(s) {
			end = len(s)
		}
		part := make([]byte, end-i)
		copy(part, s[i:end])
		seg.appendChunk(newChunk(part))
	}
	return seg
}

func (s *Segment) appendChunk(c *chunk) {
	if s.head == nil {
		s.head = c
	} else {
		s.tail.next = c
	}
	s.tail = c
	s.length += len(c.digits)
}

// Length returns the total number of digits in the segment.
func (s *Segment) Length() int {
	return s.length
}

// LengthCapped returns min(Length(), limit), without walking chunks beyond
// what's needed to decide the comparison.
func (s *Segment) LengthCapped(limit int) int {
	if s.length <= limit {
		return s.length
	}
	return limit
}

// Mask returns the union of every chunk's digit-presence mask.
func (s *Segment) Mask() digitset.Mask {
	var m digitset.Mask
	for c := s.head; c != nil; c = c.next {
		m = m.Union(c.mask)
	}
	return m
}

// String reconstructs the full digit string. Used for path reconstruction
// (full_key_of) and error messages; not on the hot insert/find path.
func (s *Segment) String() string {
	var b strings.Builder
	b.Grow(s.length)
	for c := s.head; c != nil; c = c.next {
		b.Write(c.digits)
	}
	return b.String()
}

// CopyInto writes the segment's digits into dst, which must have length
// >= Length(). Used by full-key reconstruction to fill a single
// pre-sized buffer without per-node string allocation.
func (s *Segment) CopyInto(dst []byte) {
	pos := 0
	for c := s.head; c != nil; c = c.next {
		pos += copy(dst[pos:], c.digits)
	}
}

// Byte returns the digit at absolute position i, 0 <= i < Length().
func (s *Segment) Byte(i int) byte {
	c := s.head
	for i >= len(c.digits) {
		i -= len(c.digits)
		c = c.next
	}
	return c.digits[i]
}

// ContainsOnlyDigitsInMask reports whether every digit anywhere in the
// segment belongs to allowed, checked one chunk-mask at a time so whole
// chunks (and, in internal/trie, whole subtrees) can be pruned without
// scanning every digit.
func (s *Segment) ContainsOnlyDigitsInMask(allowed digitset.Mask) bool {
	for c := s.head; c != nil; c = c.next {
		if !c.mask.SubsetOf(allowed) {
			return false
		}
	}
	return true
}

// MatchPrefix compares key against the segment starting at offset 0 in
// both, returning how many leading digits agree and whether the mismatch
// (if any) landed exactly at the segment's end (the segment is a prefix of
// key or they are equal length and equal).
func (s *Segment) MatchPrefix(key string) (matched int, atSegmentEnd bool) {
	c := s.head
	off := 0
	for matched < len(key) {
		if c == nil {
			return matched, true
		}
		if off == len(c.digits) {
			c = c.next
			off = 0
			continue
		}
		if c.digits[off] != key[matched] {
			return matched, false
		}
		matched++
		off++
	}
	// key exhausted; at segment end only if segment is exhausted too.
	for c != nil && off == len(c.digits) {
		c = c.next
		off = 0
	}
	return matched, c == nil
}

// Cursor is a position inside a segment, used by SplitAtCursor. The zero
// Cursor is not valid; obtain one via Segment.Iterate.
type Cursor struct {
	chunk *chunk
	off   int
	pos   int
}

// Iterate returns a cursor at the start of the segment.
func (s *Segment) Iterate() Cursor {
	return Cursor{chunk: s.head, off: 0, pos: 0}
}

// End reports whether the cursor has passed the last digit.
func (c Cursor) End() bool {
	return c.chunk == nil
}

// Digit returns the digit the cursor currently points at. Only valid when
// !c.End().
func (c Cursor) Digit() byte {
	return c.chunk.digits[c.off]
}

// Pos returns the cursor's absolute offset from the start of the segment.
func (c Cursor) Pos() int {
	return c.pos
}

// Next advances the cursor by one digit.
func (c Cursor) Next() Cursor {
	if c.chunk == nil {
		return c
	}
	off := c.off + 1
	ch := c.chunk
	if off == len(ch.digits) {
		ch = ch.next
		off = 0
	}
	return Cursor{chunk: ch, off: off, pos: c.pos + 1}
}

// Equal reports whether a and b denote the same position.
func (a Cursor) Equal(b Cursor) bool {
	return a.chunk == b.chunk && a.off == b.off
}

// CursorAt walks the segment to the cursor at absolute position i,
// 0 <= i <= Length().
func (s *Segment) CursorAt(i int) Cursor {
	c := s.Iterate()
	for n := 0; n < i; n++ {
		c = c.Next()
	}
	return c
}

// SplitAtCursor splits the segment at c: the prefix up to (not including)
// c's position stays in s, and the suffix from c's position onward is
// returned as a new Segment. When c sits on a chunk boundary no digits
// are copied, but the chunk preceding the cut is found by walking the
// chain from the head, so the cost grows with the number of chunks before
// the cut (a cut at the head is O(1)). Otherwise the one chunk straddling
// the cut is carved in O(chunk length).
func (s *Segment) SplitAtCursor(c Cursor) *Segment {
	suffix := &Segment{}

	if c.chunk == nil {
		// cursor at end: nothing to move.
		return suffix
	}

	if c.off == 0 {
		// Boundary split: find the chunk preceding c.chunk.
		if c.chunk == s.head {
			suffix.head, suffix.tail, suffix.length = s.head, s.tail, s.length
			s.head, s.tail, s.length = nil, nil, 0
			return suffix
		}
		prev := s.head
		for prev.next != c.chunk {
			prev = prev.next
		}
		prev.next = nil
		suffix.head = c.chunk
		suffix.tail = s.tail
		suffix.length = s.length - c.pos
		s.tail = prev
		s.length = c.pos
		return suffix
	}

	// Mid-chunk split: carve c.chunk into two chunks.
	straddle := c.chunk
	tailDigits := make([]byte, len(straddle.digits)-c.off)
	copy(tailDigits, straddle.digits[c.off:])
	suffixHead := newChunk(tailDigits)
	suffixHead.next = straddle.next

	straddle.digits = straddle.digits[:c.off]
	straddle.mask = newChunk(straddle.digits).mask
	straddle.next = nil

	suffix.head = suffixHead
	if straddle == s.tail {
		suffix.tail = suffixHead
	} else {
		suffix.tail = s.tail
	}
	suffix.length = s.length - c.pos
	s.tail = straddle
	s.length = c.pos
	return suffix
}

// SplitAt is a convenience wrapper around SplitAtCursor for callers that
// only have a plain offset.
func (s *Segment) SplitAt(i int) *Segment {
	return s.SplitAtCursor(s.CursorAt(i))
}

// Concat appends other to s, consuming other (other must not be used
// afterward). If the last chunk of s and the first chunk of other
// together fit within Cap, they are fused into a single chunk; otherwise
// the chains are linked directly.
func (s *Segment) Concat(other *Segment) {
	if other == nil || other.length == 0 {
		return
	}
	if s.head == nil {
		s.head, s.tail, s.length = other.head, other.tail, other.length
		other.head, other.tail, other.length = nil, nil, 0
		return
	}

	if len(s.tail.digits)+len(other.head.digits) <= Cap {
		fused := make([]byte, len(s.tail.digits)+len(other.head.digits))
		copy(fused, s.tail.digits)
		copy(fused[len(s.tail.digits):], other.head.digits)
		s.tail.digits = fused
		s.tail.mask = s.tail.mask.Union(other.head.mask)
		s.tail.next = other.head.next
		if other.head != other.tail {
			s.tail = other.tail
		}
	} else {
		s.tail.next = other.head
		s.tail = other.tail
	}
	s.length += other.length
	other.head, other.tail, other.length = nil, nil, 0
}
