// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: the write-only, pure-combinational check AIG (a checker's target circuit): no
// latches, every AND's operands already defined, inputs numbered densely
// and optionally annotated with a quantifier-level symbol.
package aiger

import "fmt"

// Builder incrementally constructs a combinational AIG. The zero value is
// not usable; call NewBuilder.
type Builder struct {
	maxVar   uint32
	inputs   []Symbol
	ands     []And
	outputs  []Symbol
	comments []string
	defined  map[uint32]bool // which variables are defined (input or AND output)
}

// NewBuilder returns an empty Builder with only the two constant literals
// defined.
func NewBuilder() *Builder {
	return &Builder{defined: map[uint32]bool{0: true}}
}

// NextLit returns the literal that the next AddInput or AddAnd call will
// allocate, without allocating it. Used to record the model/witness
// literal boundary for quantifier annotation (the literal map's concatenate).
func (b *Builder) NextLit() Lit {
	return Lit((b.maxVar + 1) * 2)
}

// AddInput allocates and returns a fresh input literal. name, if non-empty,
// becomes the input's symbol-table entry (used for quantifier-level
// annotation: "0"/"1"/"2").
func (b *Builder) AddInput(name string) Lit {
	b.maxVar++
	l := Lit(b.maxVar * 2)
	b.inputs = append(b.inputs, Symbol{Lit: l, Name: name})
	b.defined[uint32(l)] = true
	return l
}

// AddAnd allocates a fresh AND gate computing x /\ y and returns its
// literal. Both operands' variables must already be defined (an input, a
// prior AND output, or a constant); violating this is a programming
// invariant (ErrOperandUndefined), not an expected runtime condition.
func (b *Builder) AddAnd(x, y Lit) (Lit, error) {
	if !b.isDefined(x) || !b.isDefined(y) {
		return 0, fmt.Errorf("aiger: AddAnd(%d,%d): %w", x, y, ErrOperandUndefined)
	}
	b.maxVar++
	out := Lit(b.maxVar * 2)
	b.ands = append(b.ands, And{Out: out, X: x, Y: y})
	b.defined[uint32(out)] = true
	return out, nil
}

func (b *Builder) isDefined(l Lit) bool {
	return IsConstant(l) || b.defined[uint32(l&^1)]
}

// AddOutput declares l as a named output of the check AIG (conventionally
// the negated implication for an obligation).
func (b *Builder) AddOutput(l Lit, name string) {
	b.outputs = append(b.outputs, Symbol{Lit: l, Name: name})
}

// AddComment appends a free-form comment line, used for the human-readable
// obligation summary.
func (b *Builder) AddComment(c string) {
	b.comments = append(b.comments, c)
}

// SetInputName overwrites the symbol-table name of an already-allocated
// input, used by the obligation emitter to annotate quantifier levels
// ("0"/"1"/"2") after the fact once the quantifier plan is known.
func (b *Builder) SetInputName(l Lit, name string) {
	for i := range b.inputs {
		if b.inputs[i].Lit == l {
			b.inputs[i].Name = name
			return
		}
	}
}

// Build finalizes the Builder into an immutable *AIG. The result always has
// zero latches, since Builder has no AddLatch; no caller checks for
// latches at runtime, so ErrNotCombinational is never returned.
func (b *Builder) Build() *AIG {
	return &AIG{
		MaxVar:   b.maxVar,
		Inputs:   append([]Symbol(nil), b.inputs...),
		Ands:     append([]And(nil), b.ands...),
		Outputs:  append([]Symbol(nil), b.outputs...),
		Comments: append([]string(nil), b.comments...),
		Symbols:  symbolMap(b.inputs),
	}
}

func symbolMap(syms []Symbol) map[Lit]string {
	m := make(map[Lit]string, len(syms))
	for _, s := range syms {
		if s.Name != "" {
			m[s.Lit] = s.Name
		}
	}
	return m
}

// Gate is a convenience wrapper over AddAnd for callers (litmap, predicate)
// that already guarantee definedness and want a panic-free one-liner;
// it is exported because predicate's balanced reduction and the
// implication/equivalence helpers are shared across many obligations.
func Gate(b *Builder, x, y Lit) Lit {
	l, err := b.AddAnd(x, y)
	if err != nil {
		// Every call site constructs x and y from already-materialized
		// literal-map entries or from a constant; reaching here means an
		// internal invariant (the literal map's precondition) was violated.
		panic(err)
	}
	return l
}

// Imply returns the check-AIG literal for x -> y (not(gate(x, not(y)))).
func Imply(b *Builder, x, y Lit) Lit {
	return Not(Gate(b, x, Not(y)))
}

// Equivalent returns the check-AIG literal for x <-> y.
func Equivalent(b *Builder, x, y Lit) Lit {
	return Gate(b, Imply(b, x, y), Imply(b, y, x))
}
