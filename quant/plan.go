// SPDX-License-Identifier: MIT
//
// File: plan.go
// Role: the single operation, Plan: derive each obligation's quantifier
// alternation level from the stratification result, the oracle and
// extended cones of the witness, and any user-supplied caps.
package quant

import (
	"errors"
	"fmt"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/cone"
)

// ErrUnsoundPropositionalReset is returned by Plan when the witness is not
// stratified and the caller has pinned the reset obligation's quantifier
// level to 0: a propositional reset check would be unsound in that case.
var ErrUnsoundPropositionalReset = errors.New("quant: witness is not stratified, propositional reset check would be unsound")

// constraintLits extracts the literals of aig's constraint symbols.
func constraintLits(aig *aiger.AIG) []aiger.Lit {
	lits := make([]aiger.Lit, len(aig.Constraints))
	for i, s := range aig.Constraints {
		lits[i] = s.Lit
	}
	return lits
}

// latchResetLits and latchNextLits extract a witness's reset/next literals,
// used to test whether any of them fall in the oracle cone.
func latchResetLits(aig *aiger.AIG) []aiger.Lit {
	lits := make([]aiger.Lit, len(aig.Latches))
	for i, lt := range aig.Latches {
		lits[i] = lt.Reset
	}
	return lits
}

func latchNextLits(aig *aiger.AIG) []aiger.Lit {
	lits := make([]aiger.Lit, len(aig.Latches))
	for i, lt := range aig.Latches {
		lits[i] = lt.Next
	}
	return lits
}

// oracleSeeds collects the witness's oracle inputs. The extended
// (unclaimed) seeds are supplied to Plan by the caller (typically
// shared.Result.Extended).
func oracleSeeds(witness *aiger.AIG) []aiger.Lit {
	var seeds []aiger.Lit
	for _, in := range witness.Inputs {
		if witness.IsOracle(in.Lit) {
			seeds = append(seeds, in.Lit)
		}
	}
	return seeds
}

// Plan computes the quantifier level for every obligation that can carry
// one, given:
//   - witness: the witness AIG (cones are computed over it)
//   - stratified: the stratification result for witness
//   - extended: the set of extended (unclaimed) witness signals
//   - caps: a user-supplied ceiling per obligation; pass Uncapped for none
//
// Levels.Base is always 0: the base case is checked over the witness alone
// and never carries quantifiers.
func Plan(witness *aiger.AIG, stratified bool, extended []aiger.Lit, caps Levels) (Levels, error) {
	oracleCone := cone.Mark(witness, oracleSeeds(witness))
	extendedCone := cone.Mark(witness, extended)

	constraints := constraintLits(witness)
	output := witness.Output()

	var levels Levels

	switch {
	case cone.AnyMarked(oracleCone, constraints) || cone.AnyMarked(oracleCone, latchResetLits(witness)):
		levels.Reset = 2
	case cone.AnyMarked(extendedCone, constraints) || !stratified:
		levels.Reset = 1
	default:
		levels.Reset = 0
	}

	switch {
	case cone.AnyMarked(oracleCone, constraints) || cone.AnyMarked(oracleCone, latchNextLits(witness)):
		levels.Transition = 2
	case cone.AnyMarked(extendedCone, constraints):
		levels.Transition = 1
	default:
		levels.Transition = 0
	}

	if cone.AnyMarked(extendedCone, constraints) || extendedCone.Marked(output) {
		levels.Property = 1
	}

	levels.Base = 0

	if cone.AnyMarked(oracleCone, []aiger.Lit{output}) || cone.AnyMarked(oracleCone, constraints) {
		levels.Step = 1
	}

	levels = capLevels(levels, caps)

	if !stratified && levels.Reset == 0 {
		return Levels{}, fmt.Errorf("%w", ErrUnsoundPropositionalReset)
	}

	return levels, nil
}

// capLevels takes the elementwise minimum of computed and caps, treating
// NoCap as "no restriction".
func capLevels(computed, caps Levels) Levels {
	min := func(v, cap int) int {
		if cap == NoCap || cap < 0 {
			return v
		}
		if cap < v {
			return cap
		}
		return v
	}
	return Levels{
		Reset:      min(computed.Reset, caps.Reset),
		Transition: min(computed.Transition, caps.Transition),
		Property:   min(computed.Property, caps.Property),
		Base:       0,
		Step:       min(computed.Step, caps.Step),
	}
}
