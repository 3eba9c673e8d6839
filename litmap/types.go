package litmap

import "github.com/aigcert/certifaiger/aiger"

// Invalid marks an unmaterialized literal-map entry.
const Invalid aiger.Lit = ^aiger.Lit(0)

// Pair is a correspondence between a literal of one AIG and a literal of
// another — used both for the shared-signal mapping (model,witness) and
// for liveness interventions (next-literal,latch-literal).
type Pair struct {
	From aiger.Lit
	To   aiger.Lit
}

// Map materializes the literals of Source into a shared check-AIG Builder.
// entries is sized 2*(Source.MaxVar+1) and indexed directly by source
// literal; entries[0]=false, entries[1]=true always hold.
type Map struct {
	Source  *aiger.AIG
	entries []aiger.Lit
}

// NewMap allocates an empty map for source (the empty-map operation),
// with the two constant literals pre-bound.
func NewMap(source *aiger.AIG) *Map {
	m := &Map{
		Source:  source,
		entries: make([]aiger.Lit, source.Size()),
	}
	for i := range m.entries {
		m.entries[i] = Invalid
	}
	m.entries[aiger.FalseLit] = aiger.FalseLit
	m.entries[aiger.TrueLit] = aiger.TrueLit
	return m
}

// Get returns the check-AIG literal bound to from, if any.
func (m *Map) Get(from aiger.Lit) (aiger.Lit, bool) {
	if int(from) >= len(m.entries) {
		return 0, false
	}
	to := m.entries[from]
	return to, to != Invalid
}

// MustGet returns the check-AIG literal bound to from, panicking if it is
// unmapped — used only where a caller has already established, via
// MaterializeIO/MaterializeANDs ordering, that from must be bound.
func (m *Map) MustGet(from aiger.Lit) aiger.Lit {
	to, ok := m.Get(from)
	if !ok {
		panic(ErrOperandUnmapped)
	}
	return to
}
