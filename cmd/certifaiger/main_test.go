package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigcert/certifaiger/obligation"
	"github.com/aigcert/certifaiger/quant"
)

func TestParseArgsSplitsPositionalAndTrailingNames(t *testing.T) {
	positional, caps, names, err := parseArgs([]string{"model.aig", "witness.aig", "reset.aag", "transition.aag"})
	require.NoError(t, err)
	assert.Equal(t, []string{"model.aig", "witness.aig"}, positional)
	assert.Equal(t, []string{"reset.aag", "transition.aag"}, names)
	assert.Equal(t, quant.Uncapped, caps)
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	_, _, _, err := parseArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestParseArgsParsesQBFCaps(t *testing.T) {
	positional, caps, _, err := parseArgs([]string{"model.aig", "witness.aig", "--qbf", "1", "2", "0"})
	require.NoError(t, err)
	assert.Equal(t, []string{"model.aig", "witness.aig"}, positional)
	assert.Equal(t, 1, caps.Reset)
	assert.Equal(t, 2, caps.Transition)
	assert.Equal(t, 0, caps.Property)
	assert.Equal(t, quant.NoCap, caps.Base)
	assert.Equal(t, quant.NoCap, caps.Step)
}

func TestParseArgsQBFConsumesAllFiveCapsThenResumesPositional(t *testing.T) {
	positional, caps, _, err := parseArgs([]string{"model.aig", "--qbf", "1", "2", "0", "2", "1", "witness.aig"})
	require.NoError(t, err)
	assert.Equal(t, []string{"model.aig", "witness.aig"}, positional)
	assert.Equal(t, quant.Levels{Reset: 1, Transition: 2, Property: 0, Base: 2, Step: 1}, caps)
}

func TestParseQBFCapsRejectsNonNumericToken(t *testing.T) {
	_, _, err := parseQBFCaps([]string{"not-a-number"})
	assert.Error(t, err)
}

func TestDefaultNamesPrefersExplicitThenFallsBackToStemPlusExtension(t *testing.T) {
	checks := []obligation.Check{{Name: "reset"}, {Name: "transition"}}
	names := defaultNames(checks, []string{"r.aag"})
	assert.Equal(t, []string{"r.aag", "transition.aag"}, names)
}

func TestUsageMentionsRequiredArguments(t *testing.T) {
	assert.Contains(t, usage(), "model.aig")
	assert.Contains(t, usage(), "witness.aig")
}
