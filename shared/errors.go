// SPDX-License-Identifier: MIT
package shared

import "errors"

var (
	// ErrMappingIncomplete indicates a MAPPING/WITNESS_CIRCUIT/INTERVENTION
	// comment declared N entries but fewer than N subsequent comment lines
	// were present.
	ErrMappingIncomplete = errors.New("shared: mapping block incomplete")

	// ErrMalformedCount indicates the number following MAPPING/
	// WITNESS_CIRCUIT/INTERVENTION could not be parsed.
	ErrMalformedCount = errors.New("shared: malformed mapping count")

	// ErrMalformedEntry indicates a mapping line did not contain two
	// parseable literals.
	ErrMalformedEntry = errors.New("shared: malformed mapping entry")

	// ErrInvalidLiteral indicates a mapping entry names a literal that is
	// not an input or latch of the side it claims to belong to.
	ErrInvalidLiteral = errors.New("shared: mapping literal is not an input or latch")

	// ErrDuplicateModelLiteral indicates two distinct witness literals were
	// mapped to the same model literal, which the mapping must not permit
	// (spec.md: "treat multiple witness lits mapping to the same model lit
	// as an error").
	ErrDuplicateModelLiteral = errors.New("shared: duplicate model-side mapping entry")
)
