// Package form holds the state of the fault calculator input form: the
// selected fault type, the four raw text fields and the outcome of the last
// compute attempt.
package form

import (
	"github.com/alexiusacademia/gofault/internal/fault"
)

// Initial values shown when the form is first opened
const (
	DefaultVoltageKV = "220"
	DefaultZ1        = "0.05"
	DefaultZ2        = "0.05"
	DefaultZ0        = "0.15"
)

// Form is the editable calculator form. At most one of Result and Err is
// set at any time.
type Form struct {
	Type      fault.Type
	VoltageKV string
	Z1        string
	Z2        string
	Z0        string

	result *fault.Result
	err    error
}

// New returns a form populated with the example defaults
func New() *Form {
	return &Form{
		Type:      fault.ThreePhase,
		VoltageKV: DefaultVoltageKV,
		Z1:        DefaultZ1,
		Z2:        DefaultZ2,
		Z0:        DefaultZ0,
	}
}

// Set updates one input field. Editing a field does
// not clear the last outcome.
func (f *Form) Set(field fault.Field, value string) {
	switch field {
	case fault.FieldVoltage:
		f.VoltageKV = value
	case fault.FieldZ1:
		f.Z1 = value
	case fault.FieldZ2:
		f.Z2 = value
	case fault.FieldZ0:
		f.Z0 = value
	}
}

// Compute clears any previous outcome, then runs the calculation on the
// current fields and stores either the result or the validation error.
func (f *Form) Compute() (*fault.Result, error) {
	f.result, f.err = nil, nil

	res, err := fault.Compute(f.Type, f.VoltageKV, f.Z1, f.Z2, f.Z0)
	if err != nil {
		f.err = err
		return nil, err
	}
	f.result = res
	return res, nil
}

// Reset clears every input field and discards the last outcome without
// computing anything. The selected fault type is kept.
func (f *Form) Reset() {
	f.VoltageKV = ""
	f.Z1 = ""
	f.Z2 = ""
	f.Z0 = ""
	f.result = nil
	f.err = nil
}

// Result returns the last successful result, or nil
func (f *Form) Result() *fault.Result {
	return f.result
}

// Err returns the last validation error, or nil
func (f *Form) Err() error {
	return f.err
}
