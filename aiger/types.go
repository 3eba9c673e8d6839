package aiger

// Lit is an AIGER literal: bit 0 is polarity, Lit>>1 is the variable.
type Lit uint32

// FalseLit and TrueLit are the two constant literals every AIG defines.
const (
	FalseLit Lit = 0
	TrueLit  Lit = 1
)

// Not returns the negation of l (flips the polarity bit).
func Not(l Lit) Lit { return l ^ 1 }

// Var returns the variable index of l (l with the polarity bit stripped).
func Var(l Lit) uint32 { return uint32(l) >> 1 }

// Sign reports whether l is negated (polarity bit set).
func Sign(l Lit) bool { return l&1 == 1 }

// Latch is a state-holding element: Lit identifies it, Reset is its initial
// value (Reset == Lit means uninitialized), Next is its one-step successor.
type Latch struct {
	Lit   Lit
	Reset Lit
	Next  Lit
}

// Uninitialized reports whether l has no fixed reset value (Reset == Lit).
func (l Latch) Uninitialized() bool { return l.Reset == l.Lit }

// And is a single 2-input AND gate: Out := X /\ Y.
type And struct {
	Out Lit
	X   Lit
	Y   Lit
}

// Symbol is a named input/latch/output/bad/justice/fairness literal.
type Symbol struct {
	Lit  Lit
	Name string
}

// AIG is an immutable, read-only view over a loaded And-Inverter Graph.
// Fields are exported for straightforward construction of in-memory test
// fixtures (as the package tests do), but callers outside this
// module should prefer the accessor methods in accessors.go.
type AIG struct {
	MaxVar uint32 // highest variable index used anywhere in the AIG

	Inputs      []Symbol
	Latches     []Latch
	Ands        []And
	Constraints []Symbol
	Outputs     []Symbol
	Bad         []Symbol
	Justice     [][]Lit // one slice of literals per justice property
	Fairness    []Symbol

	// Symbols maps any input/latch/output/bad literal to its symbol-table
	// name, when one was given. Absent entries have no name.
	Symbols map[Lit]string

	// Comments holds the AIGER file's comment section verbatim, one
	// string per line, used by the shared-signal resolver to look
	// for MAPPING/WITNESS_CIRCUIT/INTERVENTION blocks.
	Comments []string
}

// size returns (maxvar+1)*2, the length a literal-indexed array over this
// AIG must have to address every literal including its negation.
func (a *AIG) size() uint32 { return (a.MaxVar + 1) * 2 }

// Size is the exported form of size, used by litmap to allocate maps.
func (a *AIG) Size() uint32 { return a.size() }
