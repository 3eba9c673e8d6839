// Package litmap materializes one AIG's literals into a target check AIG
// under construction, tracking which source literals are already
// present and preserving negation duality. It adapts a map-of-maps
// adjacency-bookkeeping idiom over string vertex IDs into a dense array
// indexed by literal, the natural shape for AIGER's integer-literal
// addressing.
package litmap
