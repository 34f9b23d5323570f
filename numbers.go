// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

// Numbers is the result of Get and Reverse: a sequence of phone numbers,
// sorted and deduplicated for Reverse, a single element (or none) for
// Get.
type Numbers []string
