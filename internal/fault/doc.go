// Package fault computes short-circuit currents and fault power at a single
// bus of a three-phase network.
//
// Three fault types are supported, each with a closed-form formula in terms of
// the line-to-line voltage V (volts) and sequence impedance magnitudes:
//
//	LLL  I = V / (√3·Z1)
//	LL   I = √3·V / (2·(Z1+Z2))
//	LG   I = √3·V / (Z1+Z2+Z0)
//
// and the fault power is S = √3·V·I. Compute accepts raw user input with
// either a period or a comma as decimal separator; Calculate accepts numbers.
// Both are pure functions and safe for concurrent use.
package fault
