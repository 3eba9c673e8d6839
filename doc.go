// Command-free library root for certifaiger: a certifying checker for
// AIG-to-AIG witness refinement. Given a model AIG and a witness AIG
// claiming to refine it, the tool resolves their shared signals, analyzes
// the witness's reset stratification and signal cones, and emits one
// propositional (or, where needed, quantified) check AIG per proof
// obligation — reset, transition, property, base, step, and the liveness
// family — each satisfiable by a SAT/QBF back-end iff the corresponding
// obligation holds.
//
// Package layout:
//
//	aiger/      — AIGER accessor layer, codec, and check-AIG builder
//	litmap/     — literal-map builder: map/materialize/concatenate
//	shared/     — shared-signal resolver: mapping, extended set, oracles
//	stratify/   — reset-stratification analyzer
//	cone/       — cone-of-influence analyzer
//	quant/      — quantifier-level planner
//	unroll/     — time-copy unroller
//	predicate/  — R/F/C/P/Q/N predicate encoder
//	obligation/ — obligation emitter
//	cmd/certifaiger/ — CLI entry point
package certifaiger
