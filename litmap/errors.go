// SPDX-License-Identifier: MIT
package litmap

import "errors"

var (
	// ErrAlreadyMapped indicates Bind was called for a source literal that
	// already has a different entry (precondition of the map(from,to)
	// operation).
	ErrAlreadyMapped = errors.New("litmap: source literal already mapped")

	// ErrOperandUnmapped indicates MaterializeANDs encountered an AND gate
	// whose operand is not yet present in the map; the source AIG's AND
	// list is assumed topological (as the AIGER format guarantees), so
	// this is a programming invariant violation, not an expected input
	// error.
	ErrOperandUnmapped = errors.New("litmap: AND operand not materialized")

	// ErrInvalid is returned by Get for literals with no entry.
	ErrInvalid = errors.New("litmap: literal not materialized")
)
