// SPDX-License-Identifier: MIT
//
// File: map.go
// Role: the four operations — map(from,to), materialize-IO,
// materialize-ANDs, concatenate — plus Bind's negation-duality bookkeeping.
package litmap

import (
	"fmt"

	"github.com/aigcert/certifaiger/aiger"
)

// Bind records that the source literal from now corresponds to the
// check-AIG literal to, and its negation to to's negation (preserving the
// map-soundness invariant m[l^1]==m[l]^1). from must be unmapped or
// already bound to to; binding it to a different literal fails with
// ErrAlreadyMapped.
func (m *Map) Bind(from, to aiger.Lit) error {
	if existing, ok := m.Get(from); ok {
		if existing == to {
			return nil // idempotent rebind is harmless
		}
		return fmt.Errorf("litmap: Bind(%d,%d): %w", from, to, ErrAlreadyMapped)
	}
	m.entries[from] = to
	m.entries[aiger.Not(from)] = aiger.Not(to)
	return nil
}

// MaterializeIO allocates, for each input then each latch of m.Source not
// yet bound, a fresh input in b and binds it. Iteration follows the AIG's
// storage order, matching the ordering guarantee in the design's
// concurrency section.
func (m *Map) MaterializeIO(b *aiger.Builder, namePrefix string) error {
	for _, in := range m.Source.Inputs {
		if _, ok := m.Get(in.Lit); ok {
			continue
		}
		fresh := b.AddInput(namePrefix)
		if err := m.Bind(in.Lit, fresh); err != nil {
			return err
		}
	}
	for _, lt := range m.Source.Latches {
		if _, ok := m.Get(lt.Lit); ok {
			continue
		}
		fresh := b.AddInput(namePrefix)
		if err := m.Bind(lt.Lit, fresh); err != nil {
			return err
		}
	}
	return nil
}

// MaterializeANDs iterates m.Source's ANDs in stored order (topological, by
// AIGER format guarantee); for each AND whose output is unmapped, it emits
// conj(map[rhs0], map[rhs1]) into b and binds the result. Operands must
// already be mapped — violating this is an internal invariant, not an
// expected-input condition.
func (m *Map) MaterializeANDs(b *aiger.Builder) error {
	for _, g := range m.Source.Ands {
		if _, ok := m.Get(g.Out); ok {
			continue
		}
		x, ok := m.Get(g.X)
		if !ok {
			return fmt.Errorf("litmap: AND %d: %w", g.Out, ErrOperandUnmapped)
		}
		y, ok := m.Get(g.Y)
		if !ok {
			return fmt.Errorf("litmap: AND %d: %w", g.Out, ErrOperandUnmapped)
		}
		fresh, err := b.AddAnd(x, y)
		if err != nil {
			return err
		}
		if err := m.Bind(g.Out, fresh); err != nil {
			return err
		}
	}
	return nil
}

// Concatenate builds left fully (materializing its IO and ANDs into b),
// then pre-binds right's shared literals to left's already-mapped entries
// before materializing right's remaining IO and ANDs. shared pairs are
// (leftLit, rightLit).
//
// It returns the check-AIG literal boundary between left-derived and
// right-derived fresh inputs — the first literal right itself allocates —
// used by the obligation emitter to decide which check-AIG inputs came
// from the model side versus the witness side for quantifier annotation.
func Concatenate(b *aiger.Builder, left, right *Map, shared []Pair, namePrefix string) (boundary aiger.Lit, err error) {
	if err := left.MaterializeIO(b, namePrefix+"L"); err != nil {
		return 0, err
	}
	if err := left.MaterializeANDs(b); err != nil {
		return 0, err
	}
	for _, p := range shared {
		leftCheckLit, ok := left.Get(p.From)
		if !ok {
			return 0, fmt.Errorf("litmap: Concatenate: shared literal %d not in left map: %w", p.From, ErrOperandUnmapped)
		}
		if err := right.Bind(p.To, leftCheckLit); err != nil {
			return 0, err
		}
	}
	boundary = b.NextLit()
	if err := right.MaterializeIO(b, namePrefix+"R"); err != nil {
		return 0, err
	}
	if err := right.MaterializeANDs(b); err != nil {
		return 0, err
	}
	return boundary, nil
}
