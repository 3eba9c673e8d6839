// Package cone computes, for a seed set of literals, which other literals
// of an AIG transitively depend on them: a single forward sweep over
// the AIG's AND gates in storage order, used to decide whether a witness's
// extensions reach its constraints, outputs, resets, or transitions.
package cone
