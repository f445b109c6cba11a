package fault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"220", 220, true},
		{"0.05", 0.05, true},
		{"0,05", 0.05, true},
		{" 13,8 ", 13.8, true},
		{"-5", -5, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1,2,3", 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-12, "input %q", tc.in)
		}
	}
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]Type{
		"lll": ThreePhase, "LLL": ThreePhase, "three-phase": ThreePhase,
		"ll": PhaseToPhase, "phase-to-phase": PhaseToPhase,
		"lg": PhaseToGround, "SLG": PhaseToGround, " lg ": PhaseToGround,
	} {
		got, err := ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseType("llg")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRawValue_UnmarshalJSON(t *testing.T) {
	var body struct {
		A RawValue `json:"a"`
		B RawValue `json:"b"`
		C RawValue `json:"c"`
		D RawValue `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": 0.05, "b": "0,05", "c": null, "d": 220}`), &body)
	require.NoError(t, err)

	assert.Equal(t, RawValue("0.05"), body.A)
	assert.Equal(t, RawValue("0,05"), body.B)
	assert.Equal(t, RawValue(""), body.C)
	assert.Equal(t, RawValue("220"), body.D)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &body))
}

func TestType_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(struct {
		T Type `json:"t"`
	}{PhaseToGround})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t":"LG"}`, string(b))

	var out struct {
		T Type `json:"t"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"t":"ll"}`), &out))
	assert.Equal(t, PhaseToPhase, out.T)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{"z1": FieldZ1, "Z2": FieldZ2, " z0 ": FieldZ0} {
		got, err := ParseField(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseField("voltage_kv")
	assert.Error(t, err)
}
