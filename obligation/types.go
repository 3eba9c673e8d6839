// SPDX-License-Identifier: MIT
package obligation

import "github.com/aigcert/certifaiger/aiger"

// Check is one emitted obligation: a name matching its default output
// filename stem ("reset", "transition", ...) and the combinational check
// AIG whose single output is the negated implication.
type Check struct {
	Name       string
	AIG        *aiger.AIG
	Quantified bool
}

// ExitBit values, OR'd together into the process exit code when every
// check succeeds at emission time: bit 1 for a quantified reset check,
// bit 2 for a quantified transition check, bit 3 for a quantified
// property check, bit 4 for a quantified step check.
const (
	ExitResetQuantified      = 1 << 0
	ExitTransitionQuantified = 1 << 1
	ExitPropertyQuantified   = 1 << 2
	ExitStepQuantified       = 1 << 3
)
