// SPDX-License-Identifier: MIT
package obligation

import "github.com/aigcert/certifaiger/aiger"

// StructuralWarnings reports non-fatal issues worth surfacing to the user
// before emission proceeds: more than one bad/output signal on either
// input AIG. Output() already resolves a deterministic first signal, so
// these never block emission.
func StructuralWarnings(model, witness *aiger.AIG) []error {
	var warnings []error
	if len(model.Bad)+len(model.Outputs) > 1 {
		warnings = append(warnings, ErrMultipleOutputs)
	}
	if len(witness.Bad)+len(witness.Outputs) > 1 {
		warnings = append(warnings, ErrMultipleOutputs)
	}
	return warnings
}
