// SPDX-License-Identifier: MIT
//
// File: resolve.go
// Role: the three prioritized mapping sources (MAPPING, legacy
// WITNESS_CIRCUIT, symbol annotations) plus positional default, and the
// independent INTERVENTION/oracle resolution.
package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/hashicorp/go-multierror"
)

// Resolve computes the shared mapping, extended set, oracle set, and
// liveness interventions for (model, witness),.
func Resolve(model, witness *aiger.AIG) (Result, error) {
	var pairs []Pair
	var merr *multierror.Error

	switch {
	case hasCommentPrefix(witness.Comments, "MAPPING"):
		p, err := parseMapping(witness)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		pairs = p
	case hasCommentPrefix(witness.Comments, "WITNESS_CIRCUIT"):
		p, err := parseWitnessCircuit(witness)
		if err != nil {
			merr = multierror.Append(merr, err)
		}
		pairs = p
	default:
		if p := parseSimulatesSymbols(witness); len(p) > 0 {
			pairs = p
		} else {
			pairs = defaultPositional(model, witness)
		}
	}

	for _, p := range pairs {
		if !witness.IsInput(p.WitnessLit) && !witness.IsLatch(p.WitnessLit) {
			merr = multierror.Append(merr, fmt.Errorf("%w: witness literal %d", ErrInvalidLiteral, p.WitnessLit))
		}
		if !model.IsInput(p.ModelLit) && !model.IsLatch(p.ModelLit) {
			merr = multierror.Append(merr, fmt.Errorf("%w: model literal %d", ErrInvalidLiteral, p.ModelLit))
		}
	}
	if hasDuplicateModelLit(pairs) {
		merr = multierror.Append(merr, ErrDuplicateModelLiteral)
	}

	interventions, err := parseInterventions(witness)
	if err != nil {
		merr = multierror.Append(merr, err)
	}
	interventions = append(interventions, symbolInterventions(witness)...)

	res := Result{
		Shared:        pairs,
		Oracles:       oracleInputs(witness),
		Interventions: interventions,
	}
	res.Extended = computeExtended(witness, pairs)

	if merr.ErrorOrNil() != nil {
		return res, merr
	}
	return res, nil
}

// parseMapping looks for a "MAPPING <N>" comment followed by N comment
// lines "<witness_lit> <model_lit>". Whitespace-tolerant (fields-based),
// as spec.md documents it to be — the authoritative format.
func parseMapping(witness *aiger.AIG) ([]Pair, error) {
	idx := findCommentPrefix(witness.Comments, "MAPPING")
	n, err := parseCountAfter(witness.Comments[idx], "MAPPING")
	if err != nil {
		return nil, err
	}
	lines := witness.Comments[idx+1:]
	if len(lines) < n {
		return nil, ErrMappingIncomplete
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 2 {
			return nil, ErrMalformedEntry
		}
		w, err1 := strconv.ParseUint(fields[0], 10, 32)
		m, err2 := strconv.ParseUint(fields[1], 10, 32)
		if err1 != nil || err2 != nil {
			return nil, ErrMalformedEntry
		}
		pairs = append(pairs, Pair{ModelLit: aiger.Lit(m), WitnessLit: aiger.Lit(w)})
	}
	return pairs, nil
}

// parseWitnessCircuit is the legacy "WITNESS_CIRCUIT <N>" path with
// reversed tuple order "<model_lit> <witness_lit>". spec.md's open
// question notes this path's whitespace-tolerance was never documented in
// the original tool, unlike MAPPING; this implementation keeps the same
// fields-based tolerant parse for practicality but MAPPING always takes
// priority when both comments are present (see the switch in Resolve) —
// WITNESS_CIRCUIT is legacy, not authoritative.
func parseWitnessCircuit(witness *aiger.AIG) ([]Pair, error) {
	idx := findCommentPrefix(witness.Comments, "WITNESS_CIRCUIT")
	n, err := parseCountAfter(witness.Comments[idx], "WITNESS_CIRCUIT")
	if err != nil {
		return nil, err
	}
	lines := witness.Comments[idx+1:]
	if len(lines) < n {
		return nil, ErrMappingIncomplete
	}
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 2 {
			return nil, ErrMalformedEntry
		}
		m, err1 := strconv.ParseUint(fields[0], 10, 32)
		w, err2 := strconv.ParseUint(fields[1], 10, 32)
		if err1 != nil || err2 != nil {
			return nil, ErrMalformedEntry
		}
		pairs = append(pairs, Pair{ModelLit: aiger.Lit(m), WitnessLit: aiger.Lit(w)})
	}
	return pairs, nil
}

// parseSimulatesSymbols scans every witness input/latch for a "= <num>"
// symbol annotation (the "simulates" marker).
func parseSimulatesSymbols(witness *aiger.AIG) []Pair {
	var pairs []Pair
	for _, in := range witness.Inputs {
		if m, ok, err := witness.Simulates(in.Lit); ok && err == nil {
			pairs = append(pairs, Pair{ModelLit: m, WitnessLit: in.Lit})
		}
	}
	for _, lt := range witness.Latches {
		if m, ok, err := witness.Simulates(lt.Lit); ok && err == nil {
			pairs = append(pairs, Pair{ModelLit: m, WitnessLit: lt.Lit})
		}
	}
	return pairs
}

// defaultPositional pairs inputs then latches positionally up to the
// smaller of the two counts.
func defaultPositional(model, witness *aiger.AIG) []Pair {
	var pairs []Pair
	n := minInt(len(model.Inputs), len(witness.Inputs))
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{ModelLit: model.Inputs[i].Lit, WitnessLit: witness.Inputs[i].Lit})
	}
	n = minInt(len(model.Latches), len(witness.Latches))
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{ModelLit: model.Latches[i].Lit, WitnessLit: witness.Latches[i].Lit})
	}
	return pairs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// parseInterventions looks for a legacy "INTERVENTION <N>" comment block,
// N lines of "<witness_next_lit> <witness_latch_lit>".
func parseInterventions(witness *aiger.AIG) ([]Intervention, error) {
	idx := findCommentPrefix(witness.Comments, "INTERVENTION")
	if idx < 0 {
		return nil, nil
	}
	n, err := parseCountAfter(witness.Comments[idx], "INTERVENTION")
	if err != nil {
		return nil, err
	}
	lines := witness.Comments[idx+1:]
	if len(lines) < n {
		return nil, ErrMappingIncomplete
	}
	out := make([]Intervention, 0, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 2 {
			return nil, ErrMalformedEntry
		}
		next, err1 := strconv.ParseUint(fields[0], 10, 32)
		latch, err2 := strconv.ParseUint(fields[1], 10, 32)
		if err1 != nil || err2 != nil {
			return nil, ErrMalformedEntry
		}
		out = append(out, Intervention{NextLit: aiger.Lit(next), LatchLit: aiger.Lit(latch)})
	}
	return out, nil
}

// symbolInterventions scans witness input/latch symbols for the "<"
// (intervention) marker.
func symbolInterventions(witness *aiger.AIG) []Intervention {
	var out []Intervention
	for _, in := range witness.Inputs {
		if paired, ok, err := witness.Intervention(in.Lit); ok && err == nil {
			out = append(out, Intervention{NextLit: in.Lit, LatchLit: paired})
		}
	}
	for _, lt := range witness.Latches {
		if paired, ok, err := witness.Intervention(lt.Lit); ok && err == nil {
			out = append(out, Intervention{NextLit: lt.Lit, LatchLit: paired})
		}
	}
	return out
}

// oracleInputs returns every witness input whose symbol begins with
// "oracle".
func oracleInputs(witness *aiger.AIG) []aiger.Lit {
	var out []aiger.Lit
	for _, in := range witness.Inputs {
		if witness.IsOracle(in.Lit) {
			out = append(out, in.Lit)
		}
	}
	return out
}

// computeExtended returns the witness input/latch literals with no
// counterpart among pairs' WitnessLit.
func computeExtended(witness *aiger.AIG, pairs []Pair) []aiger.Lit {
	claimed := make(map[aiger.Lit]bool, len(pairs))
	for _, p := range pairs {
		claimed[p.WitnessLit&^1] = true
	}
	var out []aiger.Lit
	for _, in := range witness.Inputs {
		if !claimed[in.Lit] {
			out = append(out, in.Lit)
		}
	}
	for _, lt := range witness.Latches {
		if !claimed[lt.Lit] {
			out = append(out, lt.Lit)
		}
	}
	return out
}

func hasCommentPrefix(comments []string, prefix string) bool {
	return findCommentPrefix(comments, prefix) >= 0
}

func findCommentPrefix(comments []string, prefix string) int {
	for i, c := range comments {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// parseCountAfter parses the integer following "<prefix>" in a comment
// line such as "MAPPING 3" or "MAPPING  3  " (fields-based, so embedded
// whitespace is tolerated regardless of amount).
func parseCountAfter(line, prefix string) (int, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, ErrMalformedCount
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, ErrMalformedCount
	}
	return n, nil
}

// hasDuplicateModelLit reports whether two distinct witness literals were
// mapped to the same model literal.
func hasDuplicateModelLit(pairs []Pair) bool {
	seen := make(map[aiger.Lit]aiger.Lit, len(pairs))
	for _, p := range pairs {
		base := p.ModelLit &^ 1
		if prevWitness, ok := seen[base]; ok && prevWitness != p.WitnessLit&^1 {
			return true
		}
		seen[base] = p.WitnessLit &^ 1
	}
	return false
}
