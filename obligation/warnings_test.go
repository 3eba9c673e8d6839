package obligation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigcert/certifaiger/aiger"
	"github.com/aigcert/certifaiger/obligation"
)

func TestStructuralWarningsFlagsMultipleOutputs(t *testing.T) {
	model, witness := trivialPair()
	model.Outputs = append(model.Outputs, aiger.Symbol{Lit: 2})

	warnings := obligation.StructuralWarnings(model, witness)
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], obligation.ErrMultipleOutputs)
}

func TestStructuralWarningsEmptyWhenSingleOutputEach(t *testing.T) {
	model, witness := trivialPair()
	warnings := obligation.StructuralWarnings(model, witness)
	assert.Empty(t, warnings)
}
