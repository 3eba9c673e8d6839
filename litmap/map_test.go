package litmap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/litmap"
)

// snapshot captures every bound entry of m as a plain map, since Map's
// internal array is unexported and not itself comparable with cmp.
func snapshot(m *litmap.Map, lits []aiger.Lit) map[aiger.Lit]aiger.Lit {
	out := make(map[aiger.Lit]aiger.Lit, len(lits))
	for _, l := range lits {
		if to, ok := m.Get(l); ok {
			out[l] = to
		}
	}
	return out
}

// buildSource returns a tiny reencoded AIG: two inputs x(2), y(4), one AND
// gate z(6) = x & y.
func buildSource() *aiger.AIG {
	return &aiger.AIG{
		MaxVar: 3,
		Inputs: []aiger.Symbol{{Lit: 2}, {Lit: 4}},
		Ands:   []aiger.And{{Out: 6, X: 2, Y: 4}},
	}
}

func TestNewMapPreBindsConstants(t *testing.T) {
	m := litmap.NewMap(buildSource())
	to, ok := m.Get(aiger.FalseLit)
	require.True(t, ok)
	assert.Equal(t, aiger.FalseLit, to)
	to, ok = m.Get(aiger.TrueLit)
	require.True(t, ok)
	assert.Equal(t, aiger.TrueLit, to)
}

func TestBindPreservesNegationDuality(t *testing.T) {
	m := litmap.NewMap(buildSource())
	require.NoError(t, m.Bind(2, 100))
	to, ok := m.Get(aiger.Not(2))
	require.True(t, ok)
	assert.Equal(t, aiger.Not(aiger.Lit(100)), to)
}

func TestBindRejectsConflictingRebind(t *testing.T) {
	m := litmap.NewMap(buildSource())
	require.NoError(t, m.Bind(2, 100))
	err := m.Bind(2, 102)
	assert.ErrorIs(t, err, litmap.ErrAlreadyMapped)
}

func TestBindIdempotentOnSameValue(t *testing.T) {
	m := litmap.NewMap(buildSource())
	require.NoError(t, m.Bind(2, 100))
	assert.NoError(t, m.Bind(2, 100))
}

func TestMaterializeIOThenANDsProducesFreshGate(t *testing.T) {
	src := buildSource()
	b := aiger.NewBuilder()
	m := litmap.NewMap(src)

	require.NoError(t, m.MaterializeIO(b, "p"))
	x, ok := m.Get(2)
	require.True(t, ok)
	y, ok := m.Get(4)
	require.True(t, ok)
	assert.NotEqual(t, x, y)

	require.NoError(t, m.MaterializeANDs(b))
	z, ok := m.Get(6)
	require.True(t, ok)

	out := b.Build()
	g, ok := out.AndByOut(z)
	require.True(t, ok)
	assert.ElementsMatch(t, []aiger.Lit{x, y}, []aiger.Lit{g.X, g.Y})
}

func TestMaterializeIOSkipsAlreadyBoundLiterals(t *testing.T) {
	src := buildSource()
	b := aiger.NewBuilder()
	m := litmap.NewMap(src)
	require.NoError(t, m.Bind(2, 42)) // pre-bind x, as Concatenate does for shared signals

	require.NoError(t, m.MaterializeIO(b, "p"))
	to, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, aiger.Lit(42), to)
	// y still gets a fresh binding.
	_, ok = m.Get(4)
	require.True(t, ok)
}

func TestMaterializeANDsRejectsUnmappedOperand(t *testing.T) {
	src := buildSource()
	b := aiger.NewBuilder()
	m := litmap.NewMap(src)
	// Deliberately skip MaterializeIO.
	err := m.MaterializeANDs(b)
	assert.ErrorIs(t, err, litmap.ErrOperandUnmapped)
}

func TestConcatenateSharesLiteralsAndReturnsBoundary(t *testing.T) {
	left := buildSource()  // model: inputs 2,4, and 6
	right := buildSource() // witness: same shape, literal 2 is "shared"

	b := aiger.NewBuilder()
	leftMap := litmap.NewMap(left)
	rightMap := litmap.NewMap(right)

	boundary, err := litmap.Concatenate(b, leftMap, rightMap, []litmap.Pair{{From: 2, To: 2}}, "t")
	require.NoError(t, err)

	leftX, _ := leftMap.Get(2)
	rightX, _ := rightMap.Get(2)
	assert.Equal(t, leftX, rightX, "shared literal must resolve to the same check-AIG literal")

	// Boundary must be the first check-AIG literal belonging to right's own
	// (non-shared) fresh inputs, i.e. strictly after everything left
	// allocated.
	out := b.Build()
	assert.GreaterOrEqual(t, uint32(boundary), uint32(2))
	assert.LessOrEqual(t, uint32(boundary)/2, out.MaxVar+1)
}

// TestBindSnapshotMatchesNegationDualityTable pre-binds both inputs of a
// fresh map to distinct check-AIG literals and diffs the resulting
// four-literal snapshot (each literal and its negation) against a
// hand-computed table in one structural comparison, rather than one
// assert.Equal per entry.
func TestBindSnapshotMatchesNegationDualityTable(t *testing.T) {
	m := litmap.NewMap(buildSource())
	require.NoError(t, m.Bind(2, 100))
	require.NoError(t, m.Bind(4, 102))

	got := snapshot(m, []aiger.Lit{2, 3, 4, 5})
	want := map[aiger.Lit]aiger.Lit{
		2: 100,
		3: aiger.Not(100),
		4: 102,
		5: aiger.Not(102),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("literal-map snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestConcatenateRejectsUnknownSharedLeftLiteral(t *testing.T) {
	left := buildSource()
	right := buildSource()
	b := aiger.NewBuilder()
	leftMap := litmap.NewMap(left)
	rightMap := litmap.NewMap(right)

	// 999 was never a literal of left.
	_, err := litmap.Concatenate(b, leftMap, rightMap, []litmap.Pair{{From: 999, To: 2}}, "t")
	assert.ErrorIs(t, err, litmap.ErrOperandUnmapped)
}
