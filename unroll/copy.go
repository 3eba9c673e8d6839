// SPDX-License-Identifier: MIT
//
// File: copy.go
// Role: Copy, one time-step/instance of witness content (optionally paired
// with a model content), and the shared-pair conversion the resolver's result needs
// before it can drive litmap.Concatenate.
package unroll

import (
	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
	"github.com/aigcert/certifaiger/shared"
)

// Copy is one materialized time-step: a witness literal map, and, for
// copies that include model content, the model's literal map plus the
// check-AIG literal boundary between model-derived and witness-derived
// fresh inputs (the literal map's concatenate boundary, needed for quantifier
// annotation). Model is nil for witness-only copies (used by the step and
// liveness obligations).
type Copy struct {
	Model    *litmap.Map
	Witness  *litmap.Map
	Boundary aiger.Lit
}

// SharedPairs converts the resolver's (model,witness) correspondences into the
// (left,right) pairs litmap.Concatenate expects, under this module's fixed
// ordering convention: model is always the left-hand side, witness the
// right-hand side, so the model's literals are allocated first and the
// witness pre-binds its shared signals onto them.
func SharedPairs(pairs []shared.Pair) []litmap.Pair {
	out := make([]litmap.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = litmap.Pair{From: p.ModelLit, To: p.WitnessLit}
	}
	return out
}

// NewCopy materializes one witness+model time instance into b: model first,
// then witness with its shared literals pre-bound to model's.
func NewCopy(b *aiger.Builder, model, witness *aiger.AIG, sharedPairs []litmap.Pair, prefix string) (*Copy, error) {
	modelMap := litmap.NewMap(model)
	witnessMap := litmap.NewMap(witness)
	boundary, err := litmap.Concatenate(b, modelMap, witnessMap, sharedPairs, prefix)
	if err != nil {
		return nil, err
	}
	return &Copy{Model: modelMap, Witness: witnessMap, Boundary: boundary}, nil
}

// NewWitnessOnlyCopy materializes one time instance of witness alone,
// without any model content (used by the step and pure-liveness
// obligations, and by the x/y/z copies of decrease/closure/cover/
// consistent).
func NewWitnessOnlyCopy(b *aiger.Builder, witness *aiger.AIG, prefix string) (*Copy, error) {
	m := litmap.NewMap(witness)
	if err := m.MaterializeIO(b, prefix); err != nil {
		return nil, err
	}
	if err := m.MaterializeANDs(b); err != nil {
		return nil, err
	}
	return &Copy{Witness: m}, nil
}
