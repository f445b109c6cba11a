package fault

import (
	"fmt"
)

// SweepSpec describes a parameter sweep over one impedance
type SweepSpec struct {
	Type  Type
	Base  Input // fixed inputs; the swept field is overwritten
	Field Field // FieldZ1, FieldZ2 or FieldZ0
	From  float64
	To    float64
	Steps int // number of points, including both ends
}

// SweepPoint is one evaluated point of a sweep
type SweepPoint struct {
	Value  float64 // value of the swept impedance (ohm)
	Result *Result
}

// Validate checks that the sweep range is usable
func (s SweepSpec) Validate() error {
	switch s.Field {
	case FieldZ1:
	case FieldZ2:
		if !s.Type.NeedsZ2() {
			return fmt.Errorf("%s faults do not depend on Z2", s.Type)
		}
	case FieldZ0:
		if !s.Type.NeedsZ0() {
			return fmt.Errorf("%s faults do not depend on Z0", s.Type)
		}
	default:
		return fmt.Errorf("cannot sweep %s", s.Field)
	}
	if s.Steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d", s.Steps)
	}
	if !positive(s.From) || !positive(s.To) {
		return &ValidationError{Field: s.Field, Raw: fmt.Sprintf("%g..%g", s.From, s.To), Type: s.Type}
	}
	if s.To <= s.From {
		return fmt.Errorf("sweep end %g must be greater than start %g", s.To, s.From)
	}
	return nil
}

// Sweep evaluates the fault at evenly spaced values of one impedance
func Sweep(s SweepSpec) ([]SweepPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	step := (s.To - s.From) / float64(s.Steps-1)
	points := make([]SweepPoint, 0, s.Steps)

	for i := 0; i < s.Steps; i++ {
		v := s.From + float64(i)*step
		if i == s.Steps-1 {
			v = s.To
		}

		in := s.Base
		switch s.Field {
		case FieldZ1:
			in.Z1 = v
		case FieldZ2:
			in.Z2 = v
		case FieldZ0:
			in.Z0 = v
		}

		res, err := Calculate(s.Type, in)
		if err != nil {
			return nil, err
		}
		points = append(points, SweepPoint{Value: v, Result: res})
	}

	return points, nil
}

// ParseSweep builds a SweepSpec from raw user input. The fixed inputs are
// validated as in Compute, with from standing in for the swept impedance.
func ParseSweep(t Type, field Field, voltageKV, z1, z2, z0, from, to string, steps int) (SweepSpec, error) {
	raw := map[Field]string{
		FieldVoltage: voltageKV,
		FieldZ1:      z1,
		FieldZ2:      z2,
		FieldZ0:      z0,
	}
	raw[field] = from

	base, err := Compute(t, raw[FieldVoltage], raw[FieldZ1], raw[FieldZ2], raw[FieldZ0])
	if err != nil {
		return SweepSpec{}, err
	}
	fromV, _ := ParseNumber(from)
	toV, ok := ParseNumber(to)
	if !ok {
		return SweepSpec{}, fmt.Errorf("sweep end %q is not a number", to)
	}

	s := SweepSpec{Type: t, Base: base.Input, Field: field, From: fromV, To: toV, Steps: steps}
	return s, s.Validate()
}
