// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import (
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/trie"
)

// Remove deletes prefix and every rule whose source has prefix as an
// ancestor. Absence of a matching rule is not an error: per §4.3.2,
// removal is idempotent and silent on invalid or unmatched input.
// Grounded on phfwdRemove/phfwdRemoveCleaner.
func (fb *ForwardBase) Remove(prefix string) {
	if !digitset.IsNumber(prefix) {
		return
	}

	r := fb.forward.Find(prefix)
	if r.Outcome != trie.Found && r.Outcome != trie.Substr {
		return
	}

	fb.forward.DeleteSubtree(r.Landing, func(fd ForwardEntry) {
		deleteBackwardEntry(fb.backward, fd)
	})
}
