package fault

import (
	"fmt"
	"math"
)

// Sqrt3 is the line-to-phase voltage ratio of a balanced three-phase system
var Sqrt3 = math.Sqrt(3)

const (
	voltsPerKV = 1000.0
	ampsPerKA  = 1000.0
	vaPerMVA   = 1e6
)

// Compute validates raw user input and calculates the fault current and power.
//
// Inputs are checked in order (voltage, Z1, Z2, Z0) and the first failure is
// returned as a *ValidationError. Z2 is only checked for LL and LG faults and
// Z0 only for LG faults; impedances the fault type does not use may be empty.
func Compute(t Type, voltageKV, z1, z2, z0 string) (*Result, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	var in Input
	var ok bool

	if in.LineVoltageKV, ok = parsePositive(voltageKV); !ok {
		return nil, &ValidationError{Field: FieldVoltage, Raw: voltageKV, Type: t}
	}
	if in.Z1, ok = parsePositive(z1); !ok {
		return nil, &ValidationError{Field: FieldZ1, Raw: z1, Type: t}
	}
	if t.NeedsZ2() {
		if in.Z2, ok = parsePositive(z2); !ok {
			return nil, &ValidationError{Field: FieldZ2, Raw: z2, Type: t}
		}
	}
	if t.NeedsZ0() {
		if in.Z0, ok = parsePositive(z0); !ok {
			return nil, &ValidationError{Field: FieldZ0, Raw: z0, Type: t}
		}
	}

	return calculate(t, in)
}

// ComputeRaw is Compute for RawValue fields decoded from a request or case file
func ComputeRaw(t Type, voltageKV, z1, z2, z0 RawValue) (*Result, error) {
	return Compute(t, string(voltageKV), string(z1), string(z2), string(z0))
}

// Calculate validates pre-parsed input and calculates the fault current and
// power. Validation follows the same order and rules as Compute.
func Calculate(t Type, in Input) (*Result, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if !positive(in.LineVoltageKV) {
		return nil, &ValidationError{Field: FieldVoltage, Raw: format(in.LineVoltageKV), Type: t}
	}
	if !positive(in.Z1) {
		return nil, &ValidationError{Field: FieldZ1, Raw: format(in.Z1), Type: t}
	}
	if t.NeedsZ2() && !positive(in.Z2) {
		return nil, &ValidationError{Field: FieldZ2, Raw: format(in.Z2), Type: t}
	}
	if t.NeedsZ0() && !positive(in.Z0) {
		return nil, &ValidationError{Field: FieldZ0, Raw: format(in.Z0), Type: t}
	}

	// Unused impedances are not echoed
	if !t.NeedsZ2() {
		in.Z2 = 0
	}
	if !t.NeedsZ0() {
		in.Z0 = 0
	}
	return calculate(t, in)
}

// calculate applies the fault formula to validated input. Inputs at the
// edge of the float64 range can still overflow; such results are rejected.
func calculate(t Type, in Input) (*Result, error) {
	v := in.LineVoltageKV * voltsPerKV

	var i float64
	switch t {
	case ThreePhase:
		// I = V / (√3·Z1)
		i = v / (Sqrt3 * in.Z1)
	case PhaseToPhase:
		// I = V / (2·(Z1+Z2)/√3) = √3·V / (2·(Z1+Z2))
		i = v / (2 * (in.Z1 + in.Z2) / Sqrt3)
	case PhaseToGround:
		// I = 3·Vph / (Z1+Z2+Z0) = √3·V / (Z1+Z2+Z0)
		i = (Sqrt3 * v) / (in.Z1 + in.Z2 + in.Z0)
	}

	// S = √3·V·I
	s := Sqrt3 * v * i

	if !finite(i) || !finite(s) {
		return nil, fmt.Errorf("%w: %s fault at %g kV with Z1=%g Z2=%g Z0=%g",
			ErrOutOfRange, t, in.LineVoltageKV, in.Z1, in.Z2, in.Z0)
	}

	return &Result{
		Type:      t,
		CurrentA:  i,
		CurrentKA: i / ampsPerKA,
		PowerMVA:  s / vaPerMVA,
		Input:     in,
	}, nil
}

func parsePositive(s string) (float64, bool) {
	v, ok := ParseNumber(s)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func format(v float64) string {
	return string(Float(v))
}
