package fault

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relTol = 1e-9

func TestCompute_ThreePhaseExample(t *testing.T) {
	res, err := Compute(ThreePhase, "220", "0.05", "", "")
	require.NoError(t, err)

	assert.Equal(t, ThreePhase, res.Type)
	assert.InEpsilon(t, 2540341.1844343534, res.CurrentA, relTol)
	assert.InEpsilon(t, 2540.3411844343534, res.CurrentKA, relTol)
	assert.InEpsilon(t, 968000.0, res.PowerMVA, relTol)
	assert.Equal(t, Input{LineVoltageKV: 220, Z1: 0.05}, res.Input)
}

func TestCompute_PhaseToGroundExample(t *testing.T) {
	res, err := Compute(PhaseToGround, "220", "0.05", "0.05", "0.15")
	require.NoError(t, err)

	assert.InEpsilon(t, 1524204.710660612, res.CurrentA, relTol)
	assert.InEpsilon(t, 580800.0, res.PowerMVA, relTol)
	assert.Equal(t, Input{LineVoltageKV: 220, Z1: 0.05, Z2: 0.05, Z0: 0.15}, res.Input)
}

func TestCompute_PhaseToPhaseExample(t *testing.T) {
	res, err := Compute(PhaseToPhase, "220", "0.05", "0.05", "ignored")
	require.NoError(t, err)

	assert.InEpsilon(t, 1905255.8883257648, res.CurrentA, relTol)
	assert.Zero(t, res.Input.Z0, "Z0 is not used by LL faults")
}

func TestCompute_CommaDecimal(t *testing.T) {
	comma, err := Compute(PhaseToGround, "13,8", "0,4", "0,4", "1,2")
	require.NoError(t, err)
	period, err := Compute(PhaseToGround, "13.8", "0.4", "0.4", "1.2")
	require.NoError(t, err)

	assert.Equal(t, period.CurrentA, comma.CurrentA)
	assert.Equal(t, 13.8, comma.Input.LineVoltageKV)
}

func TestCompute_ThreePhaseFormula(t *testing.T) {
	for _, tc := range []struct{ kv, z1 float64 }{
		{0.4, 0.01}, {11, 0.5}, {33, 2.2}, {132, 7.5}, {500, 12},
	} {
		res, err := Calculate(ThreePhase, Input{LineVoltageKV: tc.kv, Z1: tc.z1})
		require.NoError(t, err)
		want := tc.kv * 1000 / (math.Sqrt(3) * tc.z1)
		assert.InEpsilon(t, want, res.CurrentA, relTol, "kv=%g z1=%g", tc.kv, tc.z1)
	}
}

func TestCompute_PhaseToPhaseBelowThreePhase(t *testing.T) {
	for _, z := range []float64{0.01, 0.1, 1, 10} {
		lll, err := Calculate(ThreePhase, Input{LineVoltageKV: 66, Z1: z})
		require.NoError(t, err)
		ll, err := Calculate(PhaseToPhase, Input{LineVoltageKV: 66, Z1: z, Z2: z})
		require.NoError(t, err)

		assert.Less(t, ll.CurrentA, lll.CurrentA)
		assert.InEpsilon(t, math.Sqrt(3)/2, ll.CurrentA/lll.CurrentA, relTol)
	}
}

func TestCompute_PhaseToGroundDecreasesWithZ0(t *testing.T) {
	prev := math.Inf(1)
	for _, z0 := range []float64{0.01, 0.05, 0.15, 0.5, 1, 5, 50} {
		res, err := Calculate(PhaseToGround, Input{LineVoltageKV: 220, Z1: 0.05, Z2: 0.05, Z0: z0})
		require.NoError(t, err)
		assert.Less(t, res.CurrentA, prev, "z0=%g", z0)
		prev = res.CurrentA
	}
}

func TestCompute_PowerRelation(t *testing.T) {
	inputs := []Input{
		{LineVoltageKV: 0.48, Z1: 0.02, Z2: 0.025, Z0: 0.03},
		{LineVoltageKV: 13.8, Z1: 0.4, Z2: 0.4, Z0: 1.2},
		{LineVoltageKV: 220, Z1: 0.05, Z2: 0.05, Z0: 0.15},
	}
	for _, in := range inputs {
		for _, typ := range Types {
			res, err := Calculate(typ, in)
			require.NoError(t, err)
			v := in.LineVoltageKV * 1000
			assert.InEpsilon(t, math.Sqrt(3)*v*res.CurrentA, res.PowerMVA*1e6, relTol)
			assert.InEpsilon(t, res.CurrentA/1000, res.CurrentKA, relTol)
			assert.Positive(t, res.CurrentA)
			assert.Positive(t, res.PowerMVA)
		}
	}
}

func TestCompute_InvalidVoltage(t *testing.T) {
	for _, typ := range Types {
		for _, raw := range []string{"0", "-5", "abc", "", "  ", "NaN", "Inf", "0,0"} {
			res, err := Compute(typ, raw, "0.05", "0.05", "0.15")
			assert.Nil(t, res)
			require.Error(t, err, "type=%s raw=%q", typ, raw)
			assert.ErrorIs(t, err, ErrInvalidVoltage)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, FieldVoltage, verr.Field)
		}
	}
}

func TestCompute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		v     string
		z1    string
		z2    string
		z0    string
		field Field
	}{
		{"voltage before z1", ThreePhase, "0", "x", "", "", FieldVoltage},
		{"z1 invalid", ThreePhase, "220", "-1", "", "", FieldZ1},
		{"z1 before z2", PhaseToPhase, "220", "0", "0", "", FieldZ1},
		{"missing z2 for LL", PhaseToPhase, "220", "0.05", "", "", FieldZ2},
		{"unparseable z2 for LL", PhaseToPhase, "220", "0.05", "abc", "", FieldZ2},
		{"z2 before z0", PhaseToGround, "220", "0.05", "", "", FieldZ2},
		{"missing z0 for LG", PhaseToGround, "220", "0.05", "0.05", "", FieldZ0},
		{"negative z0 for LG", PhaseToGround, "220", "0.05", "0.05", "-0.15", FieldZ0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.typ, tc.v, tc.z1, tc.z2, tc.z0)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
			if tc.field != FieldVoltage {
				assert.ErrorIs(t, err, ErrInvalidImpedance)
			}
		})
	}
}

func TestCompute_UnusedImpedancesIgnored(t *testing.T) {
	_, err := Compute(ThreePhase, "220", "0.05", "garbage", "-1")
	assert.NoError(t, err)

	_, err = Compute(PhaseToPhase, "220", "0.05", "0.05", "garbage")
	assert.NoError(t, err)
}

func TestCompute_UnknownType(t *testing.T) {
	_, err := Compute(Type(9), "220", "0.05", "0.05", "0.15")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Calculate(Type(-1), Input{LineVoltageKV: 1, Z1: 1})
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestCalculate_RejectsNonFinite(t *testing.T) {
	_, err := Calculate(ThreePhase, Input{LineVoltageKV: math.Inf(1), Z1: 1})
	assert.ErrorIs(t, err, ErrInvalidVoltage)

	_, err = Calculate(ThreePhase, Input{LineVoltageKV: 11, Z1: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidImpedance)
}

func TestCalculate_DropsUnusedImpedances(t *testing.T) {
	res, err := Calculate(ThreePhase, Input{LineVoltageKV: 11, Z1: 1, Z2: -3, Z0: 7})
	require.NoError(t, err)
	assert.Equal(t, Input{LineVoltageKV: 11, Z1: 1}, res.Input)
}

func TestValidationError_Message(t *testing.T) {
	_, err := Compute(PhaseToGround, "abc", "", "", "")
	assert.EqualError(t, err, `enter a valid line-to-line voltage VLL (>0): got "abc"`)

	_, err = Compute(PhaseToPhase, "11", "1", "", "")
	assert.EqualError(t, err, "enter a valid Z2 (>0) for this fault type")

	_, err = Compute(PhaseToGround, "11", "1", "1", "0")
	assert.EqualError(t, err, `enter a valid Z0 (>0) for phase-to-ground faults: got "0"`)
}

func TestCompute_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 1; i <= 32; i++ {
		wg.Add(1)
		go func(z float64) {
			defer wg.Done()
			res, err := Calculate(ThreePhase, Input{LineVoltageKV: 11, Z1: z})
			if assert.NoError(t, err) {
				assert.InEpsilon(t, 11000/(math.Sqrt(3)*z), res.CurrentA, relTol)
			}
		}(float64(i) / 10)
	}
	wg.Wait()
}

func TestCompute_OverflowRejected(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		v, z1 string
	}{
		{"voltage overflows volts", ThreePhase, "1e306", "1"},
		{"subnormal impedance", ThreePhase, "220", "1e-320"},
		{"power overflows", ThreePhase, "1e200", "1"},
		{"LG power overflows", PhaseToGround, "1e200", "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Compute(tc.typ, tc.v, tc.z1, "1", "1")
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}

	_, err := Calculate(PhaseToPhase, Input{LineVoltageKV: math.MaxFloat64, Z1: 1, Z2: 1})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCompute_LargeButFinite(t *testing.T) {
	res, err := Compute(ThreePhase, "1e100", "1", "", "")
	require.NoError(t, err)
	assert.False(t, math.IsInf(res.CurrentA, 0))
	assert.False(t, math.IsInf(res.PowerMVA, 0))
}
