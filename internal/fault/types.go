package fault

import (
	"fmt"
	"strings"
)

// Type selects the fault formula and the impedances it requires
type Type int

const (
	ThreePhase    Type = iota // LLL - symmetrical fault across all three phases
	PhaseToPhase              // LL - fault between two phases
	PhaseToGround             // LG - fault between one phase and ground
)

// Types lists every fault type in display order
var Types = []Type{ThreePhase, PhaseToPhase, PhaseToGround}

// String returns the short code used on the command line and in case files
func (t Type) String() string {
	switch t {
	case ThreePhase:
		return "LLL"
	case PhaseToPhase:
		return "LL"
	case PhaseToGround:
		return "LG"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Description returns a human-readable name for reports
func (t Type) Description() string {
	switch t {
	case ThreePhase:
		return "Three-phase (LLL)"
	case PhaseToPhase:
		return "Phase-to-phase (LL)"
	case PhaseToGround:
		return "Phase-to-ground (LG)"
	}
	return t.String()
}

// Valid reports whether t is one of the defined fault types
func (t Type) Valid() bool {
	return t >= ThreePhase && t <= PhaseToGround
}

// NeedsZ2 reports whether the negative-sequence impedance enters the formula
func (t Type) NeedsZ2() bool {
	return t == PhaseToPhase || t == PhaseToGround
}

// NeedsZ0 reports whether the zero-sequence impedance enters the formula
func (t Type) NeedsZ0() bool {
	return t == PhaseToGround
}

// ParseType accepts the short codes (lll, ll, lg) and a few long aliases
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lll", "3ph", "three-phase", "threephase":
		return ThreePhase, nil
	case "ll", "2ph", "phase-phase", "phase-to-phase", "phasetophase":
		return PhaseToPhase, nil
	case "lg", "slg", "1ph", "phase-ground", "phase-to-ground", "phasetoground":
		return PhaseToGround, nil
	}
	return 0, fmt.Errorf("%w %q (use lll, ll or lg)", ErrUnknownType, s)
}

// MarshalText encodes the type as its short code
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a short code or alias
func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Input holds the validated quantities for one fault calculation.
// Impedances not required by the fault type are left at zero.
type Input struct {
	LineVoltageKV float64 `json:"voltage_kv"` // line-to-line voltage (kV)
	Z1            float64 `json:"z1"`         // positive-sequence impedance (ohm)
	Z2            float64 `json:"z2"`         // negative-sequence impedance (ohm)
	Z0            float64 `json:"z0"`         // zero-sequence impedance (ohm)
}

// Result holds the fault current and power for one calculation
type Result struct {
	Type      Type    `json:"type"`
	CurrentA  float64 `json:"current_a"`  // fault current (A)
	CurrentKA float64 `json:"current_ka"` // fault current (kA)
	PowerMVA  float64 `json:"power_mva"`  // fault apparent power (MVA)
	Input     Input   `json:"input"`      // validated inputs echoed for audit
}
