package engine

import "gonum.org/v1/gonum/diff/fd"

// Finite is a central finite-difference engine over a plain float64
// function.
//
// It is not automatic differentiation; it exists so the solver's engine
// seam can be exercised with an approximation when a function is only
// available as a black box. Accuracy is limited by the step size in the
// usual way.
type Finite struct {
	fn   func(float64) float64
	step float64
}

// NewFinite creates a finite-difference engine for the given function.
// step is the differencing step; 0 selects the formula's default.
func NewFinite(fn func(float64) float64, step float64) *Finite {
	return &Finite{fn: fn, step: step}
}

// Evaluate returns f(x).
func (e *Finite) Evaluate(x float64) (fx float64, err error) {
	defer recoverToError(&err, "evaluate")
	return e.fn(x), nil
}

// Differentiate approximates f'(x) with the central difference formula.
func (e *Finite) Differentiate(x float64) (dfx float64, err error) {
	defer recoverToError(&err, "differentiate")
	settings := &fd.Settings{Formula: fd.Central}
	if e.step != 0 {
		settings.Step = e.step
	}
	return fd.Derivative(e.fn, x, settings), nil
}
