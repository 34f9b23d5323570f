// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

// Package registry implements the base registry: a keyed collection of
// forwarding bases, looked up by an identifier string hashed with a
// polynomial rolling hash (used only to short-circuit the string
// comparison, not as the sole lookup key).
package registry

import "github.com/CStanKonrad/IPPPhoneForwarding"

const (
	hashBase = 127
	hashMod  = 1000000009
)

// hashID computes the polynomial rolling hash of id, grounded on
// phoneBasesHashId.
func hashID(id string) uint64 {
	var result uint64
	for i := 0; i < len(id); i++ {
		result = (result*hashBase + uint64(id[i])) % hashMod
	}
	return result
}

// entry is one node of the registry's open singly linked list.
type entry struct {
	hash uint64
	id   string
	base *phfwd.ForwardBase
	next *entry
}

// Registry is an open list of identifier-to-base bindings. The zero
// value is a valid, empty Registry.
type Registry struct {
	head *entry
	size int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// find returns the entry for id, or nil if none exists.
func (r *Registry) find(id string, hash uint64) *entry {
	for e := r.head; e != nil; e = e.next {
		if e.hash == hash && e.id == id {
			return e
		}
	}
	return nil
}

// GetBase returns the base bound to id, or nil if none exists.
func (r *Registry) GetBase(id string) *phfwd.ForwardBase {
	if e := r.find(id, hashID(id)); e != nil {
		return e.base
	}
	return nil
}

// AddBase returns the existing base bound to id, creating and binding a
// new empty one if none exists yet. Grounded on phoneBasesAddBase.
func (r *Registry) AddBase(id string) *phfwd.ForwardBase {
	hash := hashID(id)
	if e := r.find(id, hash); e != nil {
		return e.base
	}

	e := &entry{hash: hash, id: id, base: phfwd.New(), next: r.head}
	r.head = e
	r.size++
	return e.base
}

// DelBase unlinks and discards the base bound to id. It reports whether
// a base was found; a false result is the registry's only signal of a
// missing id — the command interpreter is responsible for turning that
// into an UnknownBase error (see DESIGN.md). Grounded on
// phoneBasesDelBase.
func (r *Registry) DelBase(id string) bool {
	hash := hashID(id)
	prev := (*entry)(nil)
	for cur := r.head; cur != nil; cur = cur.next {
		if cur.hash == hash && cur.id == id {
			if prev != nil {
				prev.next = cur.next
			} else {
				r.head = cur.next
			}
			r.size--
			return true
		}
		prev = cur
	}
	return false
}

// Len returns the number of bases currently registered.
func (r *Registry) Len() int {
	return r.size
}

// Destroy discards every base in the registry. A Registry is also safe
// to simply drop without calling Destroy — it owns no resources beyond
// normal garbage-collected memory — but Destroy is kept for parity with
// phoneBasesDestroyPhoneBases and to give callers an explicit point at
// which every held base becomes unreachable.
func (r *Registry) Destroy() {
	r.head = nil
	r.size = 0
}
