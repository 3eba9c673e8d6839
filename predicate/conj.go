// SPDX-License-Identifier: MIT
//
// File: conj.go
// Role: the balanced pairwise conjunction reduction used by every
// predicate below, so a run of N atoms produces a check-AIG subtree of
// depth O(log N) rather than O(N).
package predicate

import "github.com/aigcert/certifaiger/aiger"

// And reduces atoms to their conjunction via balanced pairwise gating. An
// empty slice is vacuously true; a single atom is returned unchanged.
func And(b *aiger.Builder, atoms []aiger.Lit) aiger.Lit {
	if len(atoms) == 0 {
		return aiger.TrueLit
	}
	for len(atoms) > 1 {
		next := make([]aiger.Lit, 0, (len(atoms)+1)/2)
		for i := 0; i+1 < len(atoms); i += 2 {
			next = append(next, aiger.Gate(b, atoms[i], atoms[i+1]))
		}
		if len(atoms)%2 == 1 {
			next = append(next, atoms[len(atoms)-1])
		}
		atoms = next
	}
	return atoms[0]
}

// Or reduces atoms to their disjunction, De Morgan over And.
func Or(b *aiger.Builder, atoms []aiger.Lit) aiger.Lit {
	if len(atoms) == 0 {
		return aiger.FalseLit
	}
	negated := make([]aiger.Lit, len(atoms))
	for i, a := range atoms {
		negated[i] = aiger.Not(a)
	}
	return aiger.Not(And(b, negated))
}
