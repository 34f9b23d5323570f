// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/trie"

// sortUnique returns strs sorted in digit-lexicographic order with
// duplicates removed. Grounded on phfwdRadixSortOut (4.3.6): build a
// scratch trie, insert every string keeping the string itself as the
// landing node's data (so a repeat insert just overwrites it), then Fold
// in digit-lexicographic order to read the deduplicated, sorted result
// back out. O(total input length).
func sortUnique(strs []string) Numbers {
	tr := trie.New[string]()
	for _, s := range strs {
		n := tr.Insert(s)
		n.Data = s
		n.HasData = true
	}

	var out Numbers
	tr.Fold(func(s string) { out = append(out, s) })
	return out
}
