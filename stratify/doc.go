// Package stratify decides whether a witness's latch reset definitions are
// acyclic, replacing an earlier DFS-with-coloring approach (the
// teacher repository's dfs.TopologicalSort, which required latches in
// reverse topological order) with Kahn's in-degree algorithm, as spec.md
// §4.4 mandates: it does not depend on any particular latch ordering.
package stratify
