// Package predicate encodes the propositional building blocks shared by
// every obligation: R (state equals reset), F (transition holds), C
// (constraints active), P (safety property holds), and, for liveness
// obligations, Q[j]/N[j] (justice and ranking-function atoms). Conjunctions
// use a balanced pairwise reduction so check-AIG depth grows logarithmically
// instead of linearly in the number of conjuncts.
package predicate
