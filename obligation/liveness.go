// SPDX-License-Identifier: MIT
//
// File: liveness.go
// Role: the liveness obligation family (decrease, closure, cover,
// consistent, live), emitted once per justice index when the witness (or
// model) declares any justice property. None of these carry a quantified
// variant in spec.md; they are always propositional over three (or, for
// live, five) witness/model time copies.
package obligation

import (
	"strconv"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
	"github.com/aigcert/certifaiger/predicate"
	"github.com/aigcert/certifaiger/shared"
	"github.com/aigcert/certifaiger/unroll"
)

// JusticeCount returns how many liveness obligations to emit: the larger
// of model's and witness's declared justice-property counts, per
// spec.md's "missing ones are treated as true" rule.
func JusticeCount(model, witness *aiger.AIG) int {
	n := len(model.Justice)
	if len(witness.Justice) > n {
		n = len(witness.Justice)
	}
	return n
}

// interventionN builds N'_{at,substituteFrom}[j]: the witness liveness atom
// evaluated at the "at" copy with next-state components substituted from
// "substituteFrom", per predicate.InterventionMap.
func interventionN(b *aiger.Builder, witness *aiger.AIG, at, substituteFrom *litmap.Map, interventions []shared.Intervention, j int) (aiger.Lit, error) {
	m, err := predicate.InterventionMap(b, witness, at, substituteFrom, interventions)
	if err != nil {
		return 0, err
	}
	return predicate.N(b, m, j), nil
}

// Decrease emits, for justice index j: (C'_x∧P'_x∧C'_y∧P'_y∧F') → N'_xy.
func Decrease(model, witness *aiger.AIG, res shared.Result, j int) (Check, error) {
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(res.Shared), false)
	if err != nil {
		return Check{}, err
	}
	x, y := lc.X.Witness, lc.Y.Witness

	guard := predicate.And(b, []aiger.Lit{
		predicate.C(b, x), predicate.P(b, x),
		predicate.C(b, y), predicate.P(b, y),
		predicate.F(b, x, y, predicate.AllLatchLits(witness)),
	})
	nxy, err := interventionN(b, witness, x, y, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	formula := aiger.Imply(b, guard, nxy)
	name := nameWithIndex("decrease", j)
	b.AddOutput(aiger.Not(formula), name)
	b.AddComment(name + ": C'x ^ P'x ^ C'y ^ P'y ^ F' -> N'xy")
	return Check{Name: name, AIG: b.Build()}, nil
}

// Closure emits, for justice index j: (∧_{i∈{x,y,z}} C'_i∧P'_i) ∧ N'_xy ∧
// F'_yz → N'_xz.
func Closure(model, witness *aiger.AIG, res shared.Result, j int) (Check, error) {
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(res.Shared), false)
	if err != nil {
		return Check{}, err
	}
	x, y, z := lc.X.Witness, lc.Y.Witness, lc.Z.Witness

	nxy, err := interventionN(b, witness, x, y, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	nxz, err := interventionN(b, witness, x, z, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	fyz := predicate.F(b, y, z, predicate.AllLatchLits(witness))

	guard := predicate.And(b, []aiger.Lit{
		predicate.C(b, x), predicate.P(b, x),
		predicate.C(b, y), predicate.P(b, y),
		predicate.C(b, z), predicate.P(b, z),
		nxy, fyz,
	})
	formula := aiger.Imply(b, guard, nxz)
	name := nameWithIndex("closure", j)
	b.AddOutput(aiger.Not(formula), name)
	b.AddComment(name + ": Cx'^Px' ^ Cy'^Py' ^ Cz'^Pz' ^ Nxy' ^ Fyz' -> Nxz'")
	return Check{Name: name, AIG: b.Build()}, nil
}

// Cover emits, for justice index j: (C'_x∧P'_x∧C'_y∧P'_y∧F'∧N'_yx) →
// disjunction of Q'_x.
func Cover(model, witness *aiger.AIG, res shared.Result, j int) (Check, error) {
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(res.Shared), false)
	if err != nil {
		return Check{}, err
	}
	x, y := lc.X.Witness, lc.Y.Witness

	nyx, err := interventionN(b, witness, y, x, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	f := predicate.F(b, x, y, predicate.AllLatchLits(witness))
	qx := predicate.Q(b, x, j)

	guard := predicate.And(b, []aiger.Lit{
		predicate.C(b, x), predicate.P(b, x),
		predicate.C(b, y), predicate.P(b, y),
		f, nyx,
	})
	formula := aiger.Imply(b, guard, predicate.Cover(b, qx))
	name := nameWithIndex("cover", j)
	b.AddOutput(aiger.Not(formula), name)
	b.AddComment(name + ": Cx'^Px' ^ Cy'^Py' ^ F' ^ Nyx' -> or_q Qx'[q]")
	return Check{Name: name, AIG: b.Build()}, nil
}

// Consistent emits, for justice index j: the same guard as Cover, implying
// the pointwise Q'_x[q] → Q'_y[q] conjunction.
func Consistent(model, witness *aiger.AIG, res shared.Result, j int) (Check, error) {
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(res.Shared), false)
	if err != nil {
		return Check{}, err
	}
	x, y := lc.X.Witness, lc.Y.Witness

	nyx, err := interventionN(b, witness, y, x, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	f := predicate.F(b, x, y, predicate.AllLatchLits(witness))
	qx := predicate.Q(b, x, j)
	qy := predicate.Q(b, y, j)

	guard := predicate.And(b, []aiger.Lit{
		predicate.C(b, x), predicate.P(b, x),
		predicate.C(b, y), predicate.P(b, y),
		f, nyx,
	})
	formula := aiger.Imply(b, guard, predicate.Consistent(b, qx, qy))
	name := nameWithIndex("consistent", j)
	b.AddOutput(aiger.Not(formula), name)
	b.AddComment(name + ": Cx'^Px' ^ Cy'^Py' ^ F' ^ Nyx' -> and_q (Qx'[q] -> Qy'[q])")
	return Check{Name: name, AIG: b.Build()}, nil
}

// Live emits, for justice index j: (∧_{i∈{x,y}} C_i∧C'_i∧P'_i) ∧ F' ∧
// N'_yx → ∧_q (Q'_x[q] → Q_x[q]), checking the witness's liveness argument
// against the model's own fairness/justice structure. Requires lc.ModelX
// and lc.ModelY (model+witness copies at x and y).
func Live(model, witness *aiger.AIG, res shared.Result, j int) (Check, error) {
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(res.Shared), true)
	if err != nil {
		return Check{}, err
	}
	mx, my := lc.ModelX, lc.ModelY

	nyx, err := interventionN(b, witness, my.Witness, mx.Witness, res.Interventions, j)
	if err != nil {
		return Check{}, err
	}
	f := predicate.F(b, mx.Witness, my.Witness, predicate.AllLatchLits(witness))
	qxPrime := predicate.Q(b, mx.Witness, j)
	qx := predicate.Q(b, mx.Model, j)

	guard := predicate.And(b, []aiger.Lit{
		predicate.C(b, mx.Model), predicate.C(b, mx.Witness), predicate.P(b, mx.Witness),
		predicate.C(b, my.Model), predicate.C(b, my.Witness), predicate.P(b, my.Witness),
		f, nyx,
	})
	formula := aiger.Imply(b, guard, predicate.Consistent(b, qxPrime, qx))
	name := nameWithIndex("live", j)
	b.AddOutput(aiger.Not(formula), name)
	b.AddComment(name + ": Cx^Cx'^Px' ^ Cy^Cy'^Py' ^ F' ^ Nyx' -> and_q (Qx'[q] -> Qx[q])")
	return Check{Name: name, AIG: b.Build()}, nil
}

func nameWithIndex(stem string, j int) string {
	if j == 0 {
		return stem
	}
	return stem + "_" + strconv.Itoa(j)
}
