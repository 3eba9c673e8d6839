// SPDX-License-Identifier: MIT
//
// File: unroll.go
// Role: the per-obligation unrolling shapes : one copy for reset and
// property, two disjoint copies for transition, two witness-only copies
// for step, and three witness copies plus, optionally, two witness+model
// copies for liveness.
package unroll

import (
	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
)

// Reset and Property both need a single witness+model time instance: the
// reset obligation compares the witness's own reset state against the
// model's, and the property obligation evaluates both AIGs' outputs at one
// step.
func Reset(b *aiger.Builder, model, witness *aiger.AIG, shared []litmap.Pair) (*Copy, error) {
	return NewCopy(b, model, witness, shared, "reset")
}

func Property(b *aiger.Builder, model, witness *aiger.AIG, shared []litmap.Pair) (*Copy, error) {
	return NewCopy(b, model, witness, shared, "property")
}

// Transition builds two disjoint witness+model copies sharing no latch
// state: t0 supplies the "current state" operands of F, t1 the "next
// state" ones. Each copy allocates its own fresh latch-lit inputs; nothing
// here constrains t1's latch lits to t0's next literals, that equivalence
// is the predicate encoder's F obligation, not the unroller's job.
func Transition(b *aiger.Builder, model, witness *aiger.AIG, shared []litmap.Pair) (t0, t1 *Copy, err error) {
	t0, err = NewCopy(b, model, witness, shared, "transition0")
	if err != nil {
		return nil, nil, err
	}
	t1, err = NewCopy(b, model, witness, shared, "transition1")
	if err != nil {
		return nil, nil, err
	}
	return t0, t1, nil
}

// Step builds two witness-only time instances: the base/step obligations
// reason purely about the witness's own inductive structure, with no model
// content at all.
func Step(b *aiger.Builder, witness *aiger.AIG) (t0, t1 *Copy, err error) {
	t0, err = NewWitnessOnlyCopy(b, witness, "step0")
	if err != nil {
		return nil, nil, err
	}
	t1, err = NewWitnessOnlyCopy(b, witness, "step1")
	if err != nil {
		return nil, nil, err
	}
	return t0, t1, nil
}

// Liveness builds the three witness-only copies (x, y, z) that the
// decrease, closure, cover and consistent obligations share, plus, only
// when withModel is set (the "live" obligation, which checks the witness's
// liveness argument against the model's own fairness/justice structure),
// two further copies pairing model and witness content at x and at y
// respectively (the live obligation's guard references the model's own
// constraints at both times, which the witness-only x/y copies cannot
// supply).
type LivenessCopies struct {
	X, Y, Z       *Copy
	ModelX, ModelY *Copy // nil unless withModel
}

func Liveness(b *aiger.Builder, model, witness *aiger.AIG, shared []litmap.Pair, withModel bool) (*LivenessCopies, error) {
	x, err := NewWitnessOnlyCopy(b, witness, "livex")
	if err != nil {
		return nil, err
	}
	y, err := NewWitnessOnlyCopy(b, witness, "livey")
	if err != nil {
		return nil, err
	}
	z, err := NewWitnessOnlyCopy(b, witness, "livez")
	if err != nil {
		return nil, err
	}
	lc := &LivenessCopies{X: x, Y: y, Z: z}
	if withModel {
		mx, err := NewCopy(b, model, witness, shared, "livemodelx")
		if err != nil {
			return nil, err
		}
		my, err := NewCopy(b, model, witness, shared, "livemodely")
		if err != nil {
			return nil, err
		}
		lc.ModelX, lc.ModelY = mx, my
	}
	return lc, nil
}
