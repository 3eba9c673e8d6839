// SPDX-License-Identifier: MIT
package aiger

import "errors"

// Sentinel errors for the aiger package. Callers should use errors.Is to
// branch on semantics rather than comparing strings, matching the sentinel
// convention used throughout this module.
var (
	// ErrMalformedHeader indicates the AIGER "aag"/"aig" header line could
	// not be parsed (wrong field count, non-numeric field, bad magic).
	ErrMalformedHeader = errors.New("aiger: malformed header")

	// ErrTruncated indicates the file ended before all declared inputs,
	// latches, ANDs, or the binary delta section were read.
	ErrTruncated = errors.New("aiger: truncated input")

	// ErrBadLiteral indicates a literal field failed to parse as a
	// non-negative even-or-odd integer in range.
	ErrBadLiteral = errors.New("aiger: malformed literal")

	// ErrNotReencoded indicates input literals do not occupy 2..2*numInputs
	// with latch literals immediately following, as required by every
	// component downstream of the accessor layer.
	ErrNotReencoded = errors.New("aiger: inputs and latches are not reencoded")

	// ErrNotCombinational indicates a Builder-produced AIG unexpectedly
	// carries latches; every check AIG this module emits must be purely
	// combinational.
	ErrNotCombinational = errors.New("aiger: check AIG must have no latches")

	// ErrOperandUndefined indicates AddAnd was called with an operand
	// literal whose variable has not yet been defined in the Builder
	// (neither an input nor the output of a prior AddAnd/AddInput call).
	ErrOperandUndefined = errors.New("aiger: AND operand not yet defined")
)
