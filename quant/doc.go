// Package quant derives, per obligation, the quantifier alternation level
// (0 propositional, 1 one universal extension, 2 outer-exist/inner-forall/
// innermost-exist) from the stratification analyzer and cone analyzer
// results, capped by any user-supplied limit.
package quant
