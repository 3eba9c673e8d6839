// Package shared resolves the correspondence between a witness AIG's
// inputs/latches and a model AIG's, from three prioritized sources —
// a MAPPING comment block, symbol-table "simulates" annotations, or
// positional defaults — plus the independent INTERVENTION block and "<"
// symbol annotations used by the liveness predicate encoder, and the
// "oracle"-prefixed witness inputs used by the quantifier planner.
package shared
