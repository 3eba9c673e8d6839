// SPDX-License-Identifier: MIT
//
// File: accessors.go
// Role: read-only projections over an AIG: membership tests, symbol
// and "simulates"/"intervention" annotation lookup, and the output
// literal's bad/output/false precedence.
package aiger

import (
	"strconv"
	"strings"
)

// NumInputs, NumLatches, NumAnds report the declared counts, mirroring the
// AIGER header fields.
func (a *AIG) NumInputs() int { return len(a.Inputs) }
func (a *AIG) NumLatches() int { return len(a.Latches) }
func (a *AIG) NumAnds() int    { return len(a.Ands) }

// IsInput reports whether l's variable is one of the AIG's inputs.
func (a *AIG) IsInput(l Lit) bool {
	for _, in := range a.Inputs {
		if in.Lit == l&^1 {
			return true
		}
	}
	return false
}

// LatchByLit returns the latch whose Lit matches l (ignoring polarity), if
// any.
func (a *AIG) LatchByLit(l Lit) (Latch, bool) {
	base := l &^ 1
	for _, lt := range a.Latches {
		if lt.Lit == base {
			return lt, true
		}
	}
	return Latch{}, false
}

// IsLatch reports whether l's variable is one of the AIG's latches.
func (a *AIG) IsLatch(l Lit) bool {
	_, ok := a.LatchByLit(l)
	return ok
}

// AndByOut returns the AND gate whose Out matches l (ignoring polarity), if
// any.
func (a *AIG) AndByOut(l Lit) (And, bool) {
	base := l &^ 1
	for _, g := range a.Ands {
		if g.Out == base {
			return g, true
		}
	}
	return And{}, false
}

// IsAnd reports whether l's variable is the output of one of the AIG's AND
// gates.
func (a *AIG) IsAnd(l Lit) bool {
	_, ok := a.AndByOut(l)
	return ok
}

// IsConstant reports whether l denotes one of the two constant literals.
func IsConstant(l Lit) bool { return l == FalseLit || l == TrueLit }

// Reencoded reports whether input literals occupy 2,4,...,2*numInputs and
// latch literals immediately follow, as required of both model and witness.
func (a *AIG) Reencoded() bool {
	var want Lit = 2
	for _, in := range a.Inputs {
		if in.Lit != want {
			return false
		}
		want += 2
	}
	for _, lt := range a.Latches {
		if lt.Lit != want {
			return false
		}
		want += 2
	}
	return true
}

// Output returns the AIG's single safety-relevant literal, preferring the
// first bad signal, falling back to the first output, and finally the
// constant false when neither is present. Multiple bad/output signals are a
// non-fatal warning the caller (cmd/certifaiger) reports separately; only
// the first is ever used here.
func (a *AIG) Output() Lit {
	if len(a.Bad) > 0 {
		return a.Bad[0].Lit
	}
	if len(a.Outputs) > 0 {
		return a.Outputs[0].Lit
	}
	return FalseLit
}

// Symbol returns the symbol-table name attached to l, if any: the Symbols
// entry when present, else the non-empty Name of the input whose literal
// matches l.
func (a *AIG) Symbol(l Lit) (string, bool) {
	if name, ok := a.Symbols[l&^1]; ok {
		return name, true
	}
	for _, in := range a.Inputs {
		if in.Lit == l&^1 && in.Name != "" {
			return in.Name, true
		}
	}
	return "", false
}

// Simulates parses a "= <num>" symbol annotation on l (an input or latch of
// a witness AIG), returning the model literal it claims to stand for. ok is
// false when l has no symbol, or the symbol does not start with '='.
func (a *AIG) Simulates(l Lit) (model Lit, ok bool, err error) {
	return parsePrefixedLit(a, l, '=')
}

// Intervention parses a "< <num>" symbol annotation on l, returning the
// paired literal used by the liveness next-step substitution. ok is
// false when l has no symbol, or the symbol does not start with '<'.
func (a *AIG) Intervention(l Lit) (paired Lit, ok bool, err error) {
	return parsePrefixedLit(a, l, '<')
}

// parsePrefixedLit implements the shared "<marker> <digits>" symbol
// annotation grammar used by both Simulates and Intervention: the name
// must start with marker, followed by a decimal literal; whitespace
// around the literal is ignored and nothing else may follow it.
func parsePrefixedLit(a *AIG, l Lit, marker byte) (Lit, bool, error) {
	name, ok := a.Symbol(l)
	if !ok || len(name) < 2 || name[0] != marker {
		return 0, false, nil
	}
	digits := strings.TrimSpace(name[1:])
	digits = strings.TrimPrefix(digits, " ")
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, true, ErrBadLiteral
	}
	return Lit(n), true, nil
}

// IsOracle reports whether l is a witness input whose symbol begins with
// "oracle" (case-sensitive), marking it as a universally-quantified
// auxiliary for the step obligation.
func (a *AIG) IsOracle(l Lit) bool {
	if !a.IsInput(l) {
		return false
	}
	name, ok := a.Symbol(l)
	return ok && strings.HasPrefix(name, "oracle")
}
