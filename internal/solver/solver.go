// Package solver implements Newton–Raphson root finding for scalar
// functions.
//
// The solver has a single external dependency: an Engine that evaluates a
// function and its first derivative at a point. How the derivative is
// obtained (reverse-mode tape, dual numbers, finite differences) is the
// engine's business; the iteration and its numerical guards live here.
package solver

import (
	"errors"
	"fmt"
	"math"
)

// Default configuration values, applied when Config fields are zero.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Numerical guard thresholds. Newton's method is only locally convergent;
// these bounds convert flat tangents and runaway iterates into a clean
// failure instead of looping on garbage.
const (
	criticalDerivative = 1e-12
	divergenceBound    = 1e10
)

// ErrNoRoot is returned by FindRoot when the search fails for any reason:
// non-finite values, a flat derivative, divergence, or an exhausted
// iteration budget. Callers needing the specific reason should use Solve.
var ErrNoRoot = errors.New("solver: no root found")

// ErrInvalidConfig is returned when Config carries a negative or NaN
// tolerance, or a negative iteration budget.
var ErrInvalidConfig = errors.New("solver: invalid config")

// Engine evaluates a scalar function and its first derivative at a point.
// Both operations are fallible: the function may be undefined or
// non-differentiable at x, and implementations must report that as an
// error rather than panic.
//
// Implementations must not retain state across calls that would make
// Evaluate at one point affect Differentiate at another.
type Engine interface {
	// Evaluate returns f(x).
	Evaluate(x float64) (float64, error)

	// Differentiate returns f'(x).
	Differentiate(x float64) (float64, error)
}

// Config holds the solver configuration.
// Zero values mean the defaults (DefaultTolerance, DefaultMaxIterations).
type Config struct {
	Tolerance     float64 // Convergence threshold on |f(x)| (default: 1e-6)
	MaxIterations int     // Iteration budget (default: 100)
}

// withDefaults returns the config with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	return c
}

// validate rejects configs that would make the iteration count undefined.
func (c Config) validate() error {
	if c.Tolerance <= 0 || math.IsNaN(c.Tolerance) {
		return fmt.Errorf("%w: tolerance %v, want > 0", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d, want >= 1", ErrInvalidConfig, c.MaxIterations)
	}
	return nil
}

// Status classifies the outcome of a Solve call.
type Status int

// Solve outcomes. Converged is the only success; the rest are the failure
// causes that FindRoot collapses into ErrNoRoot.
const (
	Converged        Status = iota // |f(x)| < tolerance
	EvalFailed                     // f(x) errored or was non-finite
	DerivativeFailed               // f'(x) errored or was non-finite
	FlatDerivative                 // |f'(x)| below the critical threshold while unconverged
	Diverged                       // step or iterate magnitude exceeded the divergence bound
	Exhausted                      // iteration budget spent without convergence
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case EvalFailed:
		return "evaluation failed"
	case DerivativeFailed:
		return "derivative failed"
	case FlatDerivative:
		return "flat derivative"
	case Diverged:
		return "diverged"
	case Exhausted:
		return "iteration budget exhausted"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a Solve call.
type Result struct {
	Root       float64 // The converged iterate; NaN unless Status == Converged
	Status     Status  // Outcome classification
	Iterations int     // Iterations performed before returning
}

// Converged reports whether the search found a root.
func (r Result) Converged() bool {
	return r.Status == Converged
}

// Solve runs Newton–Raphson iteration from initialGuess and returns the
// tagged outcome. The returned error is non-nil only for an invalid
// Config; every numerical failure is reported through Result.Status, so
// the call is total once the config is accepted.
//
// Each iteration evaluates f at the current iterate, checks convergence,
// obtains f' from the engine, and applies the update x ← x − f(x)/f'(x),
// guarded against flat tangents and unbounded growth.
func Solve(e Engine, initialGuess float64, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return Result{Root: math.NaN(), Status: EvalFailed}, err
	}

	x := initialGuess
	for i := 0; i < cfg.MaxIterations; i++ {
		fx, err := e.Evaluate(x)
		if err != nil || math.IsNaN(fx) || math.IsInf(fx, 0) {
			return Result{Root: math.NaN(), Status: EvalFailed, Iterations: i}, nil
		}

		// Convergence check comes before the derivative: a point already
		// inside tolerance is a root even where f' is flat or undefined.
		if math.Abs(fx) < cfg.Tolerance {
			return Result{Root: x, Status: Converged, Iterations: i}, nil
		}

		dfx, err := e.Differentiate(x)
		if err != nil || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			return Result{Root: math.NaN(), Status: DerivativeFailed, Iterations: i}, nil
		}

		// Critical-derivative guard: the tangent is too flat to trust.
		if math.Abs(dfx) < criticalDerivative {
			return Result{Root: math.NaN(), Status: FlatDerivative, Iterations: i}, nil
		}

		// Divergence guard on the step. dfx == 0 cannot reach here, but
		// the division is defined as +Inf and bounced all the same.
		step := fx / dfx
		if math.Abs(step) > divergenceBound {
			return Result{Root: math.NaN(), Status: Diverged, Iterations: i}, nil
		}

		next := x - step
		if math.Abs(next) > divergenceBound {
			return Result{Root: math.NaN(), Status: Diverged, Iterations: i}, nil
		}

		x = next
	}

	return Result{Root: math.NaN(), Status: Exhausted, Iterations: cfg.MaxIterations}, nil
}

// FindRoot runs Newton–Raphson iteration from initialGuess and returns the
// converged root, or ErrNoRoot when the search fails for any reason. It is
// the thin projection over Solve for callers that only care whether a root
// was found.
//
// A zero Config selects the defaults: tolerance 1e-6, 100 iterations.
func FindRoot(e Engine, initialGuess float64, cfg Config) (float64, error) {
	res, err := Solve(e, initialGuess, cfg)
	if err != nil {
		return math.NaN(), err
	}
	if !res.Converged() {
		return math.NaN(), fmt.Errorf("%w: %s after %d iterations", ErrNoRoot, res.Status, res.Iterations)
	}
	return res.Root, nil
}
