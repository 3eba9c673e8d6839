// SPDX-License-Identifier: MIT
//
// File: liveness.go
// Role: the liveness-only predicates: Q[j] (the fairness+justice atom
// vector), N[j] (the ranking-function atom), and the intervention rebuild
// that produces N'_xy, the witness liveness atom evaluated at time x with
// next-state components substituted from time y.
package predicate

import (
	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
	"github.com/aigcert/certifaiger/shared"
)

// QVector is the fairness-then-justice-j atom vector Q[j] computed for one
// (map, justice index) pair: each entry is already negated per spec.md's
// definition ("each negated").
type QVector []aiger.Lit

// Q builds the Q[j] vector for m at justice index j: the negated fairness
// atoms (shared across every j) followed by the negated atoms of the j-th
// justice property. If m.Source has no j-th justice property (the witness
// declares fewer than the model), the justice portion is simply omitted,
// which is equivalent to treating it as the vacuous conjunct true.
func Q(b *aiger.Builder, m *litmap.Map, justiceIndex int) QVector {
	var atoms []aiger.Lit
	for _, s := range m.Source.Fairness {
		atoms = append(atoms, aiger.Not(m.MustGet(s.Lit)))
	}
	if justiceIndex < len(m.Source.Justice) {
		for _, lit := range m.Source.Justice[justiceIndex] {
			atoms = append(atoms, aiger.Not(m.MustGet(lit)))
		}
	}
	return atoms
}

// N builds the N[j] ranking-function atom: the negation of the last
// literal of the j-th justice property, or TrueLit if that property is
// absent or empty.
func N(b *aiger.Builder, m *litmap.Map, justiceIndex int) aiger.Lit {
	if justiceIndex >= len(m.Source.Justice) {
		return aiger.TrueLit
	}
	js := m.Source.Justice[justiceIndex]
	if len(js) == 0 {
		return aiger.TrueLit
	}
	return aiger.Not(m.MustGet(js[len(js)-1]))
}

// Cover reduces a Q vector to the disjunction the cover obligation needs:
// "some fairness or justice atom holds".
func Cover(b *aiger.Builder, q QVector) aiger.Lit {
	return Or(b, []aiger.Lit(q))
}

// Consistent reduces two Q vectors of the same justice index (at copies x
// and y) to the conjunction of pairwise implications the consistent
// obligation needs. Vectors are expected to be the same length (same
// source AIG, same j); the shorter length is used defensively rather than
// panicking on a caller mismatch.
func Consistent(b *aiger.Builder, qx, qy QVector) aiger.Lit {
	n := len(qx)
	if len(qy) < n {
		n = len(qy)
	}
	atoms := make([]aiger.Lit, 0, n)
	for i := 0; i < n; i++ {
		atoms = append(atoms, aiger.Imply(b, qx[i], qy[i]))
	}
	return And(b, atoms)
}

// InterventionMap rebuilds witness's literal map for the mixed N'_xy
// environment: every input and latch literal is reused directly from
// xCopy's already-materialized bindings (no new gates), except a literal
// named as an intervention's NextLit — the symbol-table "<" marker sits on
// a witness input/latch's own literal (see shared.symbolInterventions), so
// that literal is rebound instead to its paired latch literal's yCopy
// binding. The remaining ANDs are re-emitted against this mixed
// environment. The resulting map's Source is still witness, so
// N(b, result, j) yields N'_xy[j].
func InterventionMap(b *aiger.Builder, witness *aiger.AIG, xCopy, yCopy *litmap.Map, interventions []shared.Intervention) (*litmap.Map, error) {
	m := litmap.NewMap(witness)

	intervened := make(map[aiger.Lit]bool, len(interventions))
	for _, iv := range interventions {
		intervened[iv.NextLit] = true
	}

	for _, in := range witness.Inputs {
		if intervened[in.Lit] {
			continue
		}
		if err := m.Bind(in.Lit, xCopy.MustGet(in.Lit)); err != nil {
			return nil, err
		}
	}
	for _, lt := range witness.Latches {
		if intervened[lt.Lit] {
			continue
		}
		if err := m.Bind(lt.Lit, xCopy.MustGet(lt.Lit)); err != nil {
			return nil, err
		}
	}
	for _, iv := range interventions {
		if err := m.Bind(iv.NextLit, yCopy.MustGet(iv.LatchLit)); err != nil {
			return nil, err
		}
	}

	if err := m.MaterializeANDs(b); err != nil {
		return nil, err
	}
	return m, nil
}
