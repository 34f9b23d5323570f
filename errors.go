// Copyright (c) 2026 CStanKonrad
// SPDX-License-Identifier: MIT

package phfwd

import "errors"

// Sentinel errors for the taxonomy in spec §7. Callers of this package
// use errors.Is against them directly. internal/interp does not inspect
// them: it picks each ERROR-line infix from the command being run.
var (
	// ErrInvalidArgument covers malformed input: non-digit characters in
	// a number, an empty number, or prefix1 == prefix2 in Add.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory marks an allocation failure. In this Go rendition
	// allocation failures are not modeled as recoverable conditions;
	// this sentinel exists for API-shape fidelity and for
	// any future fault-injection hook, not because Insert/Add can
	// currently produce it.
	ErrOutOfMemory = errors.New("not enough memory")

	// ErrNoCurrentBase: an operation needing a current base ran with
	// none selected.
	ErrNoCurrentBase = errors.New("no current base")

	// ErrUnknownBase: DEL on a base id that does not exist.
	ErrUnknownBase = errors.New("unknown base")

	// ErrLexError: unexpected character or unterminated comment in the
	// command stream.
	ErrLexError = errors.New("lexical error")
)
