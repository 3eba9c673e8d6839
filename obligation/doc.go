// Package obligation assembles and emits the per-obligation check AIGs
// : reset, transition, property, base, step, and, when the witness
// declares justice properties, the liveness family (decrease, closure,
// cover, consistent, live). Each obligation's single output is the
// negation of its guard-implies-target formula; quantified obligations
// additionally annotate their check AIG's inputs with a "0"/"1"/"2"
// quantifier-level symbol.
package obligation
