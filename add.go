// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import (
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/dlist"
	"github.com/CStanKonrad/IPPPhoneForwarding/internal/trie"
)

// Add registers a rule redirecting prefix1 to prefix2, replacing any
// existing rule for prefix1. Grounded on phfwdAdd/phfwdPrepareTreesForAdd/
// phfwdAddSetNodes: insert both prefixes, link the forward leaf into the
// backward node's source list, and tear down any prior pairing the
// forward leaf held.
func (fb *ForwardBase) Add(prefix1, prefix2 string) error {
	if !digitset.IsNumber(prefix1) || !digitset.IsNumber(prefix2) || prefix1 == prefix2 {
		return ErrInvalidArgument
	}

	f := fb.forward.Insert(prefix1)
	t := fb.backward.Insert(prefix2)

	if !t.HasData {
		t.Data = dlist.New[*trie.Node[ForwardEntry]]()
		t.HasData = true
	}

	ref := t.Data.PushBack(f)

	if f.HasData {
		deleteBackwardEntry(fb.backward, f.Data)
	}

	f.Data = ForwardEntry{target: t, backRef: ref}
	f.HasData = true

	return nil
}
