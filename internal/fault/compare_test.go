package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_AllTypes(t *testing.T) {
	cmp, err := Compare("220", "0.05", "0.05", "0.15")
	require.NoError(t, err)

	require.Len(t, cmp.Results, 3)
	assert.Empty(t, cmp.Skipped)
	assert.Equal(t, ThreePhase, cmp.Governing.Type)
	assert.InEpsilon(t, 1.0, cmp.Ratio(cmp.Results[0]), 1e-12)
	assert.InEpsilon(t, 0.8660254037844386, cmp.Ratio(cmp.Results[1]), 1e-9)
}

func TestCompare_LowZ0Governs(t *testing.T) {
	// A solidly grounded bus with small Z0 gives a larger LG current than LLL
	cmp, err := Compare("11", "1", "1", "0.1")
	require.NoError(t, err)
	assert.Equal(t, PhaseToGround, cmp.Governing.Type)
}

func TestCompare_SkipsMissingImpedances(t *testing.T) {
	cmp, err := Compare("220", "0.05", "", "")
	require.NoError(t, err)

	require.Len(t, cmp.Results, 1)
	assert.Equal(t, ThreePhase, cmp.Results[0].Type)
	require.Len(t, cmp.Skipped, 2)
	assert.Equal(t, FieldZ2, cmp.Skipped[0].Field)
	assert.Equal(t, FieldZ2, cmp.Skipped[1].Field)
}

func TestCompare_CommonInputsFail(t *testing.T) {
	_, err := Compare("-1", "0.05", "0.05", "0.15")
	assert.ErrorIs(t, err, ErrInvalidVoltage)

	_, err = Compare("220", "", "0.05", "0.15")
	assert.ErrorIs(t, err, ErrInvalidImpedance)
}

func TestCompare_OverflowFails(t *testing.T) {
	_, err := Compare("1e306", "1", "1", "1")
	assert.ErrorIs(t, err, ErrOutOfRange)
}
