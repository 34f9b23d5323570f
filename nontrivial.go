// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import "github.com/CStanKonrad/IPPPhoneForwarding/internal/digitset"

// NonTrivialCount returns, modulo 2^W, the number of length-len digit
// strings over the distinct digits occurring in alphabetString that start
// with some configured rule's target prefix (so Reverse of them yields a
// number other than themselves).
// Grounded on phfwdNonTrivialCount/
// phfwdNonTrivialCountExtractDigitsFromSet; the recurrence itself lives
// in internal/trie (4.2.8), operating on the backward tree.
//
// Note: length == 0 returns 1 regardless of the extracted digit set,
// per scenario 6 in spec.md §8 (`12^0 = 1` against an empty base), which
// the spec text itself names as the tie-breaker over §4.3.5's looser
// prose ("if len == 0 ... return 0") — see DESIGN.md's "Non-trivial
// count recurrence" entry.
func (fb *ForwardBase) NonTrivialCount(alphabetString string, length int) uint {
	mask := digitset.MaskOf(alphabetString)
	return fb.backward.NonTrivialCount(length, mask)
}
