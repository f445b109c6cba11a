package fault

import (
	"errors"
	"fmt"
)

// Error kinds, matchable with errors.Is
var (
	ErrInvalidVoltage   = errors.New("invalid voltage")
	ErrInvalidImpedance = errors.New("invalid impedance")
	ErrUnknownType      = errors.New("unknown fault type")
	ErrOutOfRange       = errors.New("fault current or power exceeds the representable range")
)

// ValidationError reports the first input that failed validation
type ValidationError struct {
	Field Field
	Raw   string // offending input as supplied, empty when absent
	Type  Type   // fault type being computed
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("enter a valid %s (>0)", e.Field.label())
	switch e.Field {
	case FieldZ2:
		msg += " for this fault type"
	case FieldZ0:
		msg += " for phase-to-ground faults"
	}
	if e.Raw != "" {
		msg += fmt.Sprintf(": got %q", e.Raw)
	}
	return msg
}

// Unwrap returns ErrInvalidVoltage or ErrInvalidImpedance
func (e *ValidationError) Unwrap() error {
	if e.Field == FieldVoltage {
		return ErrInvalidVoltage
	}
	return ErrInvalidImpedance
}
