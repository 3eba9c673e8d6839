package unroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/shared"
	"github.com/aigcert/certifaiger/unroll"
)

func modelAndWitness() (*aiger.AIG, *aiger.AIG, []shared.Pair) {
	model := &aiger.AIG{
		MaxVar:  1,
		Inputs:  []aiger.Symbol{{Lit: 2}},
		Outputs: []aiger.Symbol{{Lit: 2}},
	}
	witness := &aiger.AIG{
		MaxVar:  1,
		Inputs:  []aiger.Symbol{{Lit: 2}},
		Outputs: []aiger.Symbol{{Lit: 2}},
	}
	return model, witness, []shared.Pair{{ModelLit: 2, WitnessLit: 2}}
}

func TestSharedPairsConvertsModelToLeftWitnessToRight(t *testing.T) {
	pairs := unroll.SharedPairs([]shared.Pair{{ModelLit: 10, WitnessLit: 20}})
	require.Len(t, pairs, 1)
	assert.Equal(t, aiger.Lit(10), pairs[0].From)
	assert.Equal(t, aiger.Lit(20), pairs[0].To)
}

func TestNewCopySharesLiteralsPerConcatenateOrdering(t *testing.T) {
	model, witness, pairs := modelAndWitness()
	b := aiger.NewBuilder()
	c, err := unroll.NewCopy(b, model, witness, unroll.SharedPairs(pairs), "t")
	require.NoError(t, err)

	modelLit, ok := c.Model.Get(2)
	require.True(t, ok)
	witnessLit, ok := c.Witness.Get(2)
	require.True(t, ok)
	assert.Equal(t, modelLit, witnessLit, "shared model/witness literal must resolve identically")
}

func TestNewWitnessOnlyCopyHasNoModelMap(t *testing.T) {
	_, witness, _ := modelAndWitness()
	b := aiger.NewBuilder()
	c, err := unroll.NewWitnessOnlyCopy(b, witness, "w")
	require.NoError(t, err)
	assert.Nil(t, c.Model)
	_, ok := c.Witness.Get(2)
	assert.True(t, ok)
}

func TestTransitionBuildsTwoDisjointCopies(t *testing.T) {
	model, witness, pairs := modelAndWitness()
	b := aiger.NewBuilder()
	t0, t1, err := unroll.Transition(b, model, witness, unroll.SharedPairs(pairs))
	require.NoError(t, err)

	m0, _ := t0.Model.Get(2)
	m1, _ := t1.Model.Get(2)
	assert.NotEqual(t, m0, m1, "each transition copy must allocate its own fresh latch/input lits")
}

func TestStepBuildsTwoWitnessOnlyCopies(t *testing.T) {
	_, witness, _ := modelAndWitness()
	b := aiger.NewBuilder()
	t0, t1, err := unroll.Step(b, witness)
	require.NoError(t, err)
	assert.Nil(t, t0.Model)
	assert.Nil(t, t1.Model)
	w0, _ := t0.Witness.Get(2)
	w1, _ := t1.Witness.Get(2)
	assert.NotEqual(t, w0, w1)
}

func TestLivenessWithoutModelLeavesModelCopiesNil(t *testing.T) {
	model, witness, pairs := modelAndWitness()
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(pairs), false)
	require.NoError(t, err)
	assert.NotNil(t, lc.X)
	assert.NotNil(t, lc.Y)
	assert.NotNil(t, lc.Z)
	assert.Nil(t, lc.ModelX)
	assert.Nil(t, lc.ModelY)
}

func TestLivenessWithModelBuildsTwoIndependentModelCopies(t *testing.T) {
	model, witness, pairs := modelAndWitness()
	b := aiger.NewBuilder()
	lc, err := unroll.Liveness(b, model, witness, unroll.SharedPairs(pairs), true)
	require.NoError(t, err)
	require.NotNil(t, lc.ModelX)
	require.NotNil(t, lc.ModelY)

	mx, _ := lc.ModelX.Model.Get(2)
	my, _ := lc.ModelY.Model.Get(2)
	assert.NotEqual(t, mx, my, "live obligation needs model content paired independently at x and y")
}
