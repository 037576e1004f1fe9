// SPDX-License-Identifier: MIT
// Package: standwave/wave
//
// params.go - evaluator scalars, their validation and the time model.

package wave

import (
	"math"
)

// Params carries the scalars that, together with a coordinate grid, fully
// determine an Amplitude Volume.
type Params struct {
	// SideLength is L in sin(π·x/L); the plate spans [-L, +L]².
	SideLength float64
	// Dt is the time step size.
	Dt float64
	// Steps is n, the number of time slices (indices 0..n-1).
	Steps int
}

// Validate checks n ≥ 1, dt > 0 and sideLength > 0 in that order; non-finite
// dt or sideLength are rejected as well.
func (p Params) Validate() error {
	return p.validate(MethodParams)
}

func (p Params) validate(method string) error {
	if p.Steps < 1 {
		return paramErrorf(method, "n", p.Steps, "n >= 1")
	}
	if !isPositiveFinite(p.Dt) {
		return paramErrorf(method, "dt", p.Dt, "dt > 0")
	}
	if !isPositiveFinite(p.SideLength) {
		return paramErrorf(method, "sideLength", p.SideLength, "sideLength > 0")
	}

	return nil
}

// Time returns the simulated time i·dt of slice i.
func (p Params) Time(i int) float64 { return float64(i) * p.Dt }

// Phase returns the phase argument PhaseFactor·i·dt in radians.
func (p Params) Phase(i int) float64 { return PhaseFactor * float64(i) * p.Dt }

// TemporalFactor returns cos(PhaseFactor·i·dt), the multiplier of slice i.
func (p Params) TemporalFactor(i int) float64 { return math.Cos(p.Phase(i)) }

// StepCount derives n = floor(total/dt) from a total duration.
//
// Errors:
//   - ErrInvalidParameter when total or dt is not a positive finite number,
//     or when dt > total leaves no step at all.
//
// Example: StepCount(30, 0.1) == 300.
func StepCount(total, dt float64) (int, error) {
	if !isPositiveFinite(total) {
		return 0, paramErrorf(MethodStepCount, "total", total, "total > 0")
	}
	if !isPositiveFinite(dt) {
		return 0, paramErrorf(MethodStepCount, "dt", dt, "dt > 0")
	}
	// Plain IEEE floor: 0.3/0.1 yields 2, exactly like the scripted run.
	ratio := total / dt
	n := math.Floor(ratio)
	if n < 1 {
		return 0, paramErrorf(MethodStepCount, "dt", dt, "dt <= total")
	}
	if n > math.MaxInt32 {
		return 0, paramErrorf(MethodStepCount, "total/dt", ratio, "total/dt <= 2^31-1")
	}

	return int(n), nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
