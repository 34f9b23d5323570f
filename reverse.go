// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"

// Reverse returns the sorted, deduplicated set of numbers whose Get
// image has num as a prefix match, including num itself (the identity
// redirection always holds). Invalid input yields an empty result.
// Grounded on phfwdReverse/phfwdGetReverse/phfwdAddRedir.
func (fb *ForwardBase) Reverse(num string) Numbers {
	if !digitset.IsNumber(num) {
		return Numbers{}
	}

	ptr, matchedLen := locate(fb.backward, num)

	var out []string
	pos := matchedLen
	for !fb.backward.IsRoot(ptr) {
		if ptr.HasData {
			for e := ptr.Data.Front(); e != nil; e = e.Next() {
				prefix := fb.forward.FullKey(e.Value)
				out = append(out, prefix+num[pos:])
			}
		}
		pos -= ptr.EdgeLen()
		ptr = ptr.Parent()
	}
	out = append(out, num)

	return sortUnique(out)
}
