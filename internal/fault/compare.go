package fault

import "errors"

// Comparison holds the results of every fault type that could be computed
// from one set of inputs
type Comparison struct {
	Results   []*Result
	Skipped   []*ValidationError // fault types whose extra impedances were missing or invalid
	Governing *Result            // result with the highest fault current
}

// Compare computes every fault type for the same bus. Voltage and Z1 are
// common to all formulas, so a failure on either is returned as an error.
// A missing Z2 or Z0 only skips the fault types that need it.
func Compare(voltageKV, z1, z2, z0 string) (*Comparison, error) {
	cmp := &Comparison{}

	for _, t := range Types {
		res, err := Compute(t, voltageKV, z1, z2, z0)
		if err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field == FieldVoltage || verr.Field == FieldZ1 {
				return nil, err
			}
			cmp.Skipped = append(cmp.Skipped, verr)
			continue
		}
		cmp.Results = append(cmp.Results, res)
		if cmp.Governing == nil || res.CurrentA > cmp.Governing.CurrentA {
			cmp.Governing = res
		}
	}

	return cmp, nil
}

// Ratio returns the current of r relative to the three-phase current, or 0
// when no three-phase result is present
func (c *Comparison) Ratio(r *Result) float64 {
	for _, ref := range c.Results {
		if ref.Type == ThreePhase {
			return r.CurrentA / ref.CurrentA
		}
	}
	return 0
}
