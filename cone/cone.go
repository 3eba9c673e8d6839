// SPDX-License-Identifier: MIT
package cone

import "github.com/aigcert/certifaiger/aiger"

// Marks flags every variable of an AIG reached by the seed set, by
// variable index (0..MaxVar); both polarities of a literal share the same
// flag.
type Marks []bool

// Marked reports whether l (any polarity) is in the cone.
func (m Marks) Marked(l aiger.Lit) bool {
	v := aiger.Var(l)
	return int(v) < len(m) && m[v]
}

// Mark computes the cone of influence of seed within aig: a literal is
// marked if it is in seed, or if it is the output of an AND gate with at
// least one marked operand. A single forward sweep over aig's ANDs in
// storage order suffices because the AIGER format guarantees operands are
// defined before the AND that uses them.
func Mark(aig *aiger.AIG, seed []aiger.Lit) Marks {
	marks := make(Marks, aig.MaxVar+1)
	for _, l := range seed {
		marks[aiger.Var(l)] = true
	}
	for _, g := range aig.Ands {
		if marks.Marked(g.X) || marks.Marked(g.Y) {
			marks[aiger.Var(g.Out)] = true
		}
	}
	return marks
}

// AnyMarked reports whether any literal in lits is in the cone.
func AnyMarked(marks Marks, lits []aiger.Lit) bool {
	for _, l := range lits {
		if marks.Marked(l) {
			return true
		}
	}
	return false
}
