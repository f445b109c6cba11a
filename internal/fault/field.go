package fault

import (
	"fmt"
	"strings"
)

// Field identifies an input quantity
type Field int

const (
	FieldVoltage Field = iota
	FieldZ1
	FieldZ2
	FieldZ0
)

func (f Field) String() string {
	switch f {
	case FieldVoltage:
		return "voltage_kv"
	case FieldZ1:
		return "z1"
	case FieldZ2:
		return "z2"
	case FieldZ0:
		return "z0"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// label is the name used in messages shown to the user
func (f Field) label() string {
	switch f {
	case FieldVoltage:
		return "line-to-line voltage VLL"
	case FieldZ1:
		return "Z1"
	case FieldZ2:
		return "Z2"
	case FieldZ0:
		return "Z0"
	}
	return f.String()
}

// ParseField accepts an impedance name (z1, z2, z0) in any case
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "z1":
		return FieldZ1, nil
	case "z2":
		return FieldZ2, nil
	case "z0":
		return FieldZ0, nil
	}
	return 0, fmt.Errorf("unknown impedance %q (use z1, z2 or z0)", s)
}
