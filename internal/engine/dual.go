package engine

import "gonum.org/v1/gonum/num/dual"

// DualFunc is a scalar function expressed over dual numbers, composed from
// the gonum num/dual primitives (dual.Mul, dual.Exp, ...).
type DualFunc func(x dual.Number) dual.Number

// Dual is a forward-mode automatic differentiation engine.
//
// Seeding the input with an infinitesimal part of 1 makes a single forward
// pass carry the derivative alongside the value: f({x, 1}).Emag = f'(x).
// There is no tape and nothing to release between iterations.
type Dual struct {
	fn DualFunc
}

// NewDual creates a forward-mode engine for the given function.
func NewDual(fn DualFunc) *Dual {
	return &Dual{fn: fn}
}

// Evaluate returns f(x).
func (e *Dual) Evaluate(x float64) (fx float64, err error) {
	defer recoverToError(&err, "evaluate")
	return e.fn(dual.Number{Real: x}).Real, nil
}

// Differentiate returns f'(x) from the infinitesimal part of one forward
// pass.
func (e *Dual) Differentiate(x float64) (dfx float64, err error) {
	defer recoverToError(&err, "differentiate")
	return e.fn(dual.Number{Real: x, Emag: 1}).Emag, nil
}
