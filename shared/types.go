package shared

import "github.com/aigcert/certifaiger/aiger"

// Pair is one (model literal, witness literal) correspondence.
type Pair struct {
	ModelLit   aiger.Lit
	WitnessLit aiger.Lit
}

// Intervention pairs a witness "next" literal with the latch literal whose
// value, from a different time copy, should be substituted for it when
// building the liveness next-step atom N'_xy.
type Intervention struct {
	NextLit  aiger.Lit
	LatchLit aiger.Lit
}

// Result is the full output of resolution: the shared mapping, the witness signals it
// leaves unclaimed (the extended set), the witness inputs marked as
// oracles, and the independently-resolved intervention pairs.
type Result struct {
	Shared        []Pair
	Extended      []aiger.Lit
	Oracles       []aiger.Lit
	Interventions []Intervention
}

// IsExtended reports whether witnessLit (an input/latch literal, any
// polarity) belongs to the extended set.
func (r Result) IsExtended(witnessLit aiger.Lit) bool {
	base := witnessLit &^ 1
	for _, l := range r.Extended {
		if l == base {
			return true
		}
	}
	return false
}
