// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"

// Get returns the image of num under the longest-matching stored rule,
// or {num} itself if no rule applies. Invalid input yields an empty
// result. Grounded on phfwdGet/phfwdGetNumber/
// phfwdSetPointersForGettingText.
func (fb *ForwardBase) Get(num string) Numbers {
	if !digitset.IsNumber(num) {
		return Numbers{}
	}

	ptr, matchedLen := locate(fb.forward, num)
	for !fb.forward.IsRoot(ptr) && !ptr.HasData {
		matchedLen -= ptr.EdgeLen()
		ptr = ptr.Parent()
	}

	if fb.forward.IsRoot(ptr) {
		return Numbers{num}
	}

	fd := ptr.Data
	prefix := fb.backward.FullKey(fd.target)
	return Numbers{prefix + num[matchedLen:]}
}
