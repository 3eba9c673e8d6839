// SPDX-License-Identifier: MIT
//
// File: predicate.go
// Role: the core predicates (R, R|K, F, F|K, C, P) as functions over any
// litmap.Map, so the same code encodes both the model-side and
// witness-side instance of each predicate rather than duplicating the
// construction per side.
package predicate

import (
	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
	"github.com/aigcert/certifaiger/shared"
)

// AllLatchLits returns every latch literal of aig, in storage order.
func AllLatchLits(a *aiger.AIG) []aiger.Lit {
	lits := make([]aiger.Lit, len(a.Latches))
	for i, lt := range a.Latches {
		lits[i] = lt.Lit
	}
	return lits
}

// ModelSharedLatches and WitnessSharedLatches extract, from the shared
// pairs, the subset whose model (respectively witness) side is itself a
// latch: K and K' in the usual notation.
func ModelSharedLatches(model *aiger.AIG, pairs []shared.Pair) []aiger.Lit {
	var lits []aiger.Lit
	for _, p := range pairs {
		if model.IsLatch(p.ModelLit) {
			lits = append(lits, p.ModelLit)
		}
	}
	return lits
}

func WitnessSharedLatches(witness *aiger.AIG, pairs []shared.Pair) []aiger.Lit {
	var lits []aiger.Lit
	for _, p := range pairs {
		if witness.IsLatch(p.WitnessLit) {
			lits = append(lits, p.WitnessLit)
		}
	}
	return lits
}

// R encodes, for the given map at one time step, the conjunction over
// latchLits of "state equals reset". Passing AllLatchLits(m.Source) yields
// the unrestricted R; passing a shared-latch subset yields R|K.
func R(b *aiger.Builder, m *litmap.Map, latchLits []aiger.Lit) aiger.Lit {
	atoms := make([]aiger.Lit, 0, len(latchLits))
	for _, lit := range latchLits {
		lt, ok := m.Source.LatchByLit(lit)
		if !ok {
			continue
		}
		atoms = append(atoms, aiger.Equivalent(b, m.MustGet(lt.Lit), m.MustGet(lt.Reset)))
	}
	return And(b, atoms)
}

// F encodes the conjunction over latchLits of "m0's next equals m1's
// state", relating two time steps of the same source AIG (m0 and m1 must
// share m.Source). latchLits follows the same R/R|K convention.
func F(b *aiger.Builder, m0, m1 *litmap.Map, latchLits []aiger.Lit) aiger.Lit {
	atoms := make([]aiger.Lit, 0, len(latchLits))
	for _, lit := range latchLits {
		lt, ok := m0.Source.LatchByLit(lit)
		if !ok {
			continue
		}
		atoms = append(atoms, aiger.Equivalent(b, m0.MustGet(lt.Next), m1.MustGet(lt.Lit)))
	}
	return And(b, atoms)
}

// C encodes the conjunction over all of m.Source's constraint literals, in
// their m-mapped form.
func C(b *aiger.Builder, m *litmap.Map) aiger.Lit {
	atoms := make([]aiger.Lit, len(m.Source.Constraints))
	for i, s := range m.Source.Constraints {
		atoms[i] = m.MustGet(s.Lit)
	}
	return And(b, atoms)
}

// P encodes "the property holds": the conjunction of the negations of all
// bad and all output literals of m.Source, mapped through m.
func P(b *aiger.Builder, m *litmap.Map) aiger.Lit {
	var atoms []aiger.Lit
	for _, s := range m.Source.Bad {
		atoms = append(atoms, aiger.Not(m.MustGet(s.Lit)))
	}
	for _, s := range m.Source.Outputs {
		atoms = append(atoms, aiger.Not(m.MustGet(s.Lit)))
	}
	return And(b, atoms)
}
