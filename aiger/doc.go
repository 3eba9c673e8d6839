// Package aiger provides a typed, read-only accessor layer over And-Inverter
// Graphs (AIGs), plus a write-only incremental Builder for constructing purely
// combinational check circuits.
//
// A literal is a non-negative integer: bit 0 is polarity, lit>>1 is the
// variable. Literals 0 and 1 denote constant false and true; every literal
// and its negation (lit^1) appear paired. A Latch carries a Lit, a Reset
// (equal to Lit means uninitialized) and a Next (the one-step successor
// expression). Inputs and latches of a well-formed AIG are "reencoded":
// input literals occupy 2,4,...,2*numInputs, and latch literals immediately
// follow — Reencoded reports whether this holds.
//
// AIG values loaded via Read* are immutable read-only views (in the
// design). Builder is the separate write side used to assemble the
// combinational check circuits this module emits; it never has
// latches, and every AND it accepts must have both operands already
// defined.
package aiger
