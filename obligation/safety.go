// SPDX-License-Identifier: MIT
//
// File: safety.go
// Role: the five safety obligations (reset, transition, property, base,
// step). Reset and transition have two structurally distinct forms: the
// propositional one restricts its reset/transition predicate to the
// shared-latch subset K (the only vars a SAT query can treat as
// equivalent without quantifying anything away), the quantified one uses
// the unrestricted predicate and relies on the emitted input annotations
// to tell a QBF back-end which witness inputs it may existentially or
// universally discharge. Property, base and step never need a restricted
// form: C and P are already unrestricted, so a quantified variant differs
// from its propositional sibling only in which inputs get annotated.
package obligation

import (
	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/predicate"
	"github.com/aigcert/certifaiger/quant"
	"github.com/aigcert/certifaiger/shared"
	"github.com/aigcert/certifaiger/unroll"
)

// annotateQuantifiers marks, on b, the check-AIG inputs corresponding to
// witness's extended (inner existential, "0") and oracle (universal, "1")
// signals, as materialized in m. It is a no-op at level 0.
func annotateQuantifiers(b *aiger.Builder, m *unroll.Copy, witness *aiger.AIG, res shared.Result, level int) {
	if level < 1 || m == nil {
		return
	}
	for _, in := range witness.Inputs {
		checkLit, ok := m.Witness.Get(in.Lit)
		if !ok {
			continue
		}
		switch {
		case witness.IsOracle(in.Lit):
			b.SetInputName(checkLit, "1")
		case res.IsExtended(in.Lit):
			b.SetInputName(checkLit, "0")
		}
	}
	for _, lt := range witness.Latches {
		if !res.IsExtended(lt.Lit) {
			continue
		}
		if checkLit, ok := m.Witness.Get(lt.Lit); ok {
			b.SetInputName(checkLit, "0")
		}
	}
}

// Reset emits the reset obligation: R|K ∧ C → R'|K ∧ C' propositionally,
// or R ∧ C → ∃X∀O.(R'∧C') when level >= 1.
func Reset(model, witness *aiger.AIG, res shared.Result, level int) (Check, error) {
	b := aiger.NewBuilder()
	c, err := unroll.NewCopy(b, model, witness, unroll.SharedPairs(res.Shared), "reset")
	if err != nil {
		return Check{}, err
	}

	var guardLatches, targetLatches []aiger.Lit
	if level >= 1 {
		guardLatches = predicate.AllLatchLits(model)
		targetLatches = predicate.AllLatchLits(witness)
	} else {
		guardLatches = predicate.ModelSharedLatches(model, res.Shared)
		targetLatches = predicate.WitnessSharedLatches(witness, res.Shared)
	}

	r := predicate.R(b, c.Model, guardLatches)
	rp := predicate.R(b, c.Witness, targetLatches)
	c0 := predicate.C(b, c.Model)
	c0p := predicate.C(b, c.Witness)

	guard := predicate.And(b, []aiger.Lit{r, c0})
	target := predicate.And(b, []aiger.Lit{rp, c0p})
	formula := aiger.Imply(b, guard, target)

	annotateQuantifiers(b, c, witness, res, level)
	b.AddOutput(aiger.Not(formula), "reset")
	b.AddComment("reset: R|K ^ C -> R'|K ^ C' (propositional) or R ^ C -> exist(X) forall(O). (R' ^ C') (quantified)")
	return Check{Name: "reset", AIG: b.Build(), Quantified: level >= 1}, nil
}

// Transition emits the transition obligation across two disjoint time
// copies: F|K ∧ C_0 ∧ C_1 ∧ C'_0 → F'|K ∧ C'_1 propositionally, or
// F ∧ C_0 ∧ C_1 ∧ C'_0 → ∃X_1∀O_1.(F' ∧ C'_1) when level >= 1.
func Transition(model, witness *aiger.AIG, res shared.Result, level int) (Check, error) {
	b := aiger.NewBuilder()
	sharedPairs := unroll.SharedPairs(res.Shared)
	t0, err := unroll.NewCopy(b, model, witness, sharedPairs, "transition0")
	if err != nil {
		return Check{}, err
	}
	t1, err := unroll.NewCopy(b, model, witness, sharedPairs, "transition1")
	if err != nil {
		return Check{}, err
	}

	var guardLatches, targetLatches []aiger.Lit
	if level >= 1 {
		guardLatches = predicate.AllLatchLits(model)
		targetLatches = predicate.AllLatchLits(witness)
	} else {
		guardLatches = predicate.ModelSharedLatches(model, res.Shared)
		targetLatches = predicate.WitnessSharedLatches(witness, res.Shared)
	}

	f := predicate.F(b, t0.Model, t1.Model, guardLatches)
	fp := predicate.F(b, t0.Witness, t1.Witness, targetLatches)
	c0 := predicate.C(b, t0.Model)
	c1 := predicate.C(b, t1.Model)
	c0p := predicate.C(b, t0.Witness)
	c1p := predicate.C(b, t1.Witness)

	guard := predicate.And(b, []aiger.Lit{f, c0, c1, c0p})
	target := predicate.And(b, []aiger.Lit{fp, c1p})
	formula := aiger.Imply(b, guard, target)

	annotateQuantifiers(b, t1, witness, res, level)
	b.AddOutput(aiger.Not(formula), "transition")
	b.AddComment("transition: F|K ^ C0 ^ C1 ^ C0' -> F'|K ^ C1' (propositional) or with exist(X1) forall(O1) (quantified)")
	return Check{Name: "transition", AIG: b.Build(), Quantified: level >= 1}, nil
}

// Property emits the safety-property obligation: C ∧ C' ∧ P' → P. The
// predicates involved (C, P) are never K-restricted, so the only effect of
// level >= 1 is annotating the witness's extended/oracle inputs.
func Property(model, witness *aiger.AIG, res shared.Result, level int) (Check, error) {
	b := aiger.NewBuilder()
	c, err := unroll.NewCopy(b, model, witness, unroll.SharedPairs(res.Shared), "property")
	if err != nil {
		return Check{}, err
	}

	c0 := predicate.C(b, c.Model)
	c0p := predicate.C(b, c.Witness)
	p0p := predicate.P(b, c.Witness)
	p0 := predicate.P(b, c.Model)

	guard := predicate.And(b, []aiger.Lit{c0, c0p, p0p})
	formula := aiger.Imply(b, guard, p0)

	annotateQuantifiers(b, c, witness, res, level)
	b.AddOutput(aiger.Not(formula), "property")
	b.AddComment("property: C ^ C' ^ P' -> P")
	return Check{Name: "property", AIG: b.Build(), Quantified: level >= 1}, nil
}

// Base emits the base-case obligation over the witness alone: R' ∧ C' →
// P'. Always propositional (spec.md pins Levels.Base to 0).
func Base(witness *aiger.AIG) (Check, error) {
	b := aiger.NewBuilder()
	m, err := unroll.NewWitnessOnlyCopy(b, witness, "base")
	if err != nil {
		return Check{}, err
	}

	rp := predicate.R(b, m.Witness, predicate.AllLatchLits(witness))
	cp := predicate.C(b, m.Witness)
	pp := predicate.P(b, m.Witness)

	guard := predicate.And(b, []aiger.Lit{rp, cp})
	formula := aiger.Imply(b, guard, pp)

	b.AddOutput(aiger.Not(formula), "base")
	b.AddComment("base: R' ^ C' -> P'")
	return Check{Name: "base", AIG: b.Build()}, nil
}

// Step emits the inductive step obligation over two witness-only time
// copies: P'_0 ∧ F' ∧ C'_0 ∧ C'_1 → P'_1, quantified over ∀O when the
// witness's oracle cone reaches its output or constraints.
func Step(witness *aiger.AIG, res shared.Result, level int) (Check, error) {
	b := aiger.NewBuilder()
	t0, err := unroll.NewWitnessOnlyCopy(b, witness, "step0")
	if err != nil {
		return Check{}, err
	}
	t1, err := unroll.NewWitnessOnlyCopy(b, witness, "step1")
	if err != nil {
		return Check{}, err
	}

	p0p := predicate.P(b, t0.Witness)
	fp := predicate.F(b, t0.Witness, t1.Witness, predicate.AllLatchLits(witness))
	c0p := predicate.C(b, t0.Witness)
	c1p := predicate.C(b, t1.Witness)
	p1p := predicate.P(b, t1.Witness)

	guard := predicate.And(b, []aiger.Lit{p0p, fp, c0p, c1p})
	formula := aiger.Imply(b, guard, p1p)

	if level >= 1 {
		annotateOracleOnly(b, t1, witness)
	}
	b.AddOutput(aiger.Not(formula), "step")
	b.AddComment("step: P'0 ^ F' ^ C'0 ^ C'1 -> P'1")
	return Check{Name: "step", AIG: b.Build(), Quantified: level >= 1}, nil
}

// annotateOracleOnly marks m's witness oracle inputs as universal ("1");
// step never introduces a fresh existential extension, only the oracle
// universal layer.
func annotateOracleOnly(b *aiger.Builder, m *unroll.Copy, witness *aiger.AIG) {
	for _, in := range witness.Inputs {
		if !witness.IsOracle(in.Lit) {
			continue
		}
		if checkLit, ok := m.Witness.Get(in.Lit); ok {
			b.SetInputName(checkLit, "1")
		}
	}
}

// ExitBits computes the bitmask contribution of the quantifier levels used
// across the safety obligations, per the external-interfaces exit-code
// convention: bit set when the corresponding obligation required
// quantification.
func ExitBits(levels quant.Levels) int {
	bits := 0
	if levels.Reset >= 1 {
		bits |= ExitResetQuantified
	}
	if levels.Transition >= 1 {
		bits |= ExitTransitionQuantified
	}
	if levels.Property >= 1 {
		bits |= ExitPropertyQuantified
	}
	if levels.Step >= 1 {
		bits |= ExitStepQuantified
	}
	return bits
}
