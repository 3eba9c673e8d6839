package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
	"github.com/aigcert/certifaiger/predicate"
	"github.com/aigcert/certifaiger/shared"
)

// twoLatchAIG has latches a(2, reset=FalseLit) and b(4, reset=TrueLit), no
// inputs, no ANDs: good enough to exercise R/F without needing a full
// unroller.
func twoLatchAIG() *aiger.AIG {
	return &aiger.AIG{
		MaxVar:  2,
		Latches: []aiger.Latch{{Lit: 2, Reset: aiger.FalseLit, Next: 4}, {Lit: 4, Reset: aiger.TrueLit, Next: 2}},
	}
}

func materializedMap(t *testing.T, b *aiger.Builder, src *aiger.AIG) *litmap.Map {
	t.Helper()
	m := litmap.NewMap(src)
	require.NoError(t, m.MaterializeIO(b, "p"))
	require.NoError(t, m.MaterializeANDs(b))
	return m
}

func TestRIsTrueIffEveryLatchEqualsItsReset(t *testing.T) {
	src := twoLatchAIG()
	b := aiger.NewBuilder()
	m := materializedMap(t, b, src)
	r := predicate.R(b, m, predicate.AllLatchLits(src))
	out := b.Build()

	a, _ := m.Get(2)
	bb, _ := m.Get(4)
	// a must equal FalseLit (reset of latch a), b must equal TrueLit.
	vals := map[uint32]bool{aiger.Var(a): false, aiger.Var(bb): true}
	assert.True(t, evalLit(out, r, vals))

	vals[aiger.Var(a)] = true
	assert.False(t, evalLit(out, r, vals))
}

func TestFRelatesNextOfM0ToStateOfM1(t *testing.T) {
	src := twoLatchAIG()
	b := aiger.NewBuilder()
	m0 := materializedMap(t, b, src)
	m1 := materializedMap(t, b, src)
	f := predicate.F(b, m0, m1, predicate.AllLatchLits(src))
	out := b.Build()

	a0, _ := m0.Get(2)
	b0, _ := m0.Get(4)
	a1, _ := m1.Get(2)
	b1, _ := m1.Get(4)

	// latch a's next is literal 4 (== b), latch b's next is literal 2 (== a).
	// So F holds iff m0's b equals m1's a, and m0's a equals m1's b.
	vals := map[uint32]bool{
		aiger.Var(a0): true, aiger.Var(b0): false,
		aiger.Var(a1): false, aiger.Var(b1): true,
	}
	assert.True(t, evalLit(out, f, vals))

	vals[aiger.Var(a1)] = true
	assert.False(t, evalLit(out, f, vals))
}

func TestCIsConjunctionOfConstraints(t *testing.T) {
	src := &aiger.AIG{
		MaxVar:      2,
		Inputs:      []aiger.Symbol{{Lit: 2}, {Lit: 4}},
		Constraints: []aiger.Symbol{{Lit: 2}, {Lit: 4}},
	}
	b := aiger.NewBuilder()
	m := materializedMap(t, b, src)
	c := predicate.C(b, m)
	out := b.Build()

	x, _ := m.Get(2)
	y, _ := m.Get(4)
	assert.True(t, evalLit(out, c, map[uint32]bool{aiger.Var(x): true, aiger.Var(y): true}))
	assert.False(t, evalLit(out, c, map[uint32]bool{aiger.Var(x): true, aiger.Var(y): false}))
}

func TestPIsConjunctionOfNegatedBadAndOutputs(t *testing.T) {
	src := &aiger.AIG{
		MaxVar:  1,
		Inputs:  []aiger.Symbol{{Lit: 2}},
		Bad:     []aiger.Symbol{{Lit: 2}},
	}
	b := aiger.NewBuilder()
	m := materializedMap(t, b, src)
	p := predicate.P(b, m)
	out := b.Build()

	x, _ := m.Get(2)
	assert.True(t, evalLit(out, p, map[uint32]bool{aiger.Var(x): false}), "property holds when bad signal is false")
	assert.False(t, evalLit(out, p, map[uint32]bool{aiger.Var(x): true}), "property fails when bad signal fires")
}

func TestSharedLatchExtractionFiltersByPairSide(t *testing.T) {
	model := twoLatchAIG()
	witness := twoLatchAIG()
	pairs := []shared.Pair{{ModelLit: 2, WitnessLit: 2}}
	assert.Equal(t, []aiger.Lit{2}, predicate.ModelSharedLatches(model, pairs))
	assert.Equal(t, []aiger.Lit{2}, predicate.WitnessSharedLatches(witness, pairs))
}
