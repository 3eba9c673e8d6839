// SPDX-License-Identifier: MIT
//
// File: analyze.go
// Role: the single operation, Analyze, built around Kahn's algorithm
// over the "depends on" relation: each AND gate depends on its operand
// variables, and each initialized latch depends on its reset's variable.
package stratify

import "github.com/aigcert/certifaiger/aiger"

// Analyze reports whether witness's reset definitions are acyclic when
// combined with AND-gate dependencies (a "stratified" reset). The result
// does not depend on storage order beyond the AIGER format's own
// requirement that an AND's operands are defined before the AND itself
// (SSA order) — see the package test for the determinism property.
func Analyze(witness *aiger.AIG) bool {
	n := int(witness.MaxVar) + 1

	inDegree := make([]int, n)
	children := make([][]int, n)

	addEdge := func(from, to int) {
		children[from] = append(children[from], to)
		inDegree[to]++
	}

	for _, g := range witness.Ands {
		out := int(aiger.Var(g.Out))
		addEdge(int(aiger.Var(g.X)), out)
		addEdge(int(aiger.Var(g.Y)), out)
	}
	for _, lt := range witness.Latches {
		if lt.Uninitialized() {
			continue
		}
		addEdge(int(aiger.Var(lt.Reset)), int(aiger.Var(lt.Lit)))
	}

	stack := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			stack = append(stack, v)
		}
	}

	visited := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		for _, c := range children[v] {
			inDegree[c]--
			if inDegree[c] == 0 {
				stack = append(stack, c)
			}
		}
	}

	return visited == n
}
