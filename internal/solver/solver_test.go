package solver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radix-num/radix/internal/autodiff"
	"github.com/radix-num/radix/internal/engine"
	"github.com/radix-num/radix/internal/solver"
)

// mockEngine injects arbitrary values and errors into the solver, so the
// failure taxonomy can be exercised without constructing pathological
// functions.
type mockEngine struct {
	evaluate      func(x float64) (float64, error)
	differentiate func(x float64) (float64, error)

	evalCalls int
	diffCalls int
}

func (m *mockEngine) Evaluate(x float64) (float64, error) {
	m.evalCalls++
	return m.evaluate(x)
}

func (m *mockEngine) Differentiate(x float64) (float64, error) {
	m.diffCalls++
	return m.differentiate(x)
}

func taped(fn autodiff.Func) solver.Engine {
	return engine.NewTaped(fn)
}

func TestFindRoot_Linear(t *testing.T) {
	// f(x) = x − c converges to c in one Newton step from any guess.
	for _, c := range []float64{0, 3, -7.5, 1e6} {
		e := taped(func(x *autodiff.Var) *autodiff.Var {
			return x.SubScalar(c)
		})

		root, err := solver.FindRoot(e, 1000, solver.Config{})
		require.NoError(t, err)
		assert.InDelta(t, c, root, 1e-6)
	}
}

func TestSolve_Linear_OneIteration(t *testing.T) {
	e := taped(func(x *autodiff.Var) *autodiff.Var {
		return x.SubScalar(3)
	})

	res, err := solver.Solve(e, 1000, solver.Config{})
	require.NoError(t, err)
	assert.True(t, res.Converged())
	// One update lands exactly on the root; convergence is detected at the
	// start of the second iteration.
	assert.Equal(t, 1, res.Iterations)
	assert.InDelta(t, 3.0, res.Root, 1e-9)
}

func TestFindRoot_SymmetricRoots(t *testing.T) {
	// f(x) = x² − 2: the converged root keeps the sign of the guess's basin.
	square := func(x *autodiff.Var) *autodiff.Var {
		return x.Mul(x).SubScalar(2)
	}

	tests := []struct {
		name  string
		guess float64
		want  float64
	}{
		{"positive basin", 1.0, math.Sqrt2},
		{"negative basin", -1.0, -math.Sqrt2},
		{"far positive", 100.0, math.Sqrt2},
		{"far negative", -100.0, -math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := solver.FindRoot(taped(square), tt.guess, solver.Config{})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, root, 1e-6)
		})
	}
}

func TestFindRoot_NoRealRoot(t *testing.T) {
	// f(x) = x² + 1 has no real root; the guards must eventually trip.
	noRoot := func(x *autodiff.Var) *autodiff.Var {
		return x.Mul(x).AddScalar(1)
	}

	for _, guess := range []float64{0.5, -3, 42} {
		_, err := solver.FindRoot(taped(noRoot), guess, solver.Config{})
		assert.ErrorIs(t, err, solver.ErrNoRoot, "guess %v", guess)
	}
}

func TestFindRoot_AbsPathology(t *testing.T) {
	// f(x) = |x| − 2 with guess 0: the derivative is undefined there and
	// the engine reports it as non-finite.
	e := taped(func(x *autodiff.Var) *autodiff.Var {
		return x.Abs().SubScalar(2)
	})

	_, err := solver.FindRoot(e, 0, solver.Config{})
	require.ErrorIs(t, err, solver.ErrNoRoot)

	res, solveErr := solver.Solve(e, 0, solver.Config{})
	require.NoError(t, solveErr)
	assert.Equal(t, solver.DerivativeFailed, res.Status)
}

func TestFindRoot_MultiRootProximity(t *testing.T) {
	// f(x) = (x−1)(x−2)(x−3): each guess converges to the nearby root.
	cubic := func(x *autodiff.Var) *autodiff.Var {
		return x.SubScalar(1).Mul(x.SubScalar(2)).Mul(x.SubScalar(3))
	}

	tests := []struct {
		guess float64
		want  float64
	}{
		{0.5, 1.0},
		{1.9, 2.0},
		{2.9, 3.0},
	}

	for _, tt := range tests {
		root, err := solver.FindRoot(taped(cubic), tt.guess, solver.Config{Tolerance: 1e-6})
		require.NoError(t, err, "guess %v", tt.guess)
		assert.InDelta(t, tt.want, root, 1e-3, "guess %v", tt.guess)
	}
}

func TestSolve_BudgetExhaustion(t *testing.T) {
	// f(x) = x² from guess 100 halves the iterate each step; five
	// iterations are nowhere near tolerance.
	e := taped(func(x *autodiff.Var) *autodiff.Var {
		return x.Mul(x)
	})

	res, err := solver.Solve(e, 100, solver.Config{MaxIterations: 5})
	require.NoError(t, err)
	assert.Equal(t, solver.Exhausted, res.Status)
	assert.Equal(t, 5, res.Iterations)
	assert.True(t, math.IsNaN(res.Root))

	_, err = solver.FindRoot(e, 100, solver.Config{MaxIterations: 5})
	assert.ErrorIs(t, err, solver.ErrNoRoot)
}

func TestFindRoot_IdempotentAtRoot(t *testing.T) {
	// A guess already inside tolerance is returned as-is, before any
	// derivative evaluation that iteration.
	m := &mockEngine{
		evaluate:      func(x float64) (float64, error) { return 1e-9, nil },
		differentiate: func(x float64) (float64, error) { t.Fatal("derivative must not be evaluated"); return 0, nil },
	}

	root, err := solver.FindRoot(m, 1.2345, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, 1.2345, root)
	assert.Equal(t, 1, m.evalCalls)
	assert.Equal(t, 0, m.diffCalls)
}

func TestSolve_ConvergencePriorityOverFlatDerivative(t *testing.T) {
	// A point satisfying both the tolerance and the flat-derivative
	// condition is a converged root, not a failure.
	m := &mockEngine{
		evaluate:      func(x float64) (float64, error) { return 1e-9, nil },
		differentiate: func(x float64) (float64, error) { return 0, nil },
	}

	res, err := solver.Solve(m, 2.0, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.Converged, res.Status)
	assert.Equal(t, 2.0, res.Root)
}

func TestSolve_FlatDerivative(t *testing.T) {
	m := &mockEngine{
		evaluate:      func(x float64) (float64, error) { return 1.0, nil },
		differentiate: func(x float64) (float64, error) { return 1e-13, nil },
	}

	res, err := solver.Solve(m, 0, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.FlatDerivative, res.Status)
}

func TestSolve_EvalFailures(t *testing.T) {
	tests := []struct {
		name string
		fx   float64
		err  error
	}{
		{"error", 0, errors.New("undefined at x")},
		{"nan", math.NaN(), nil},
		{"plus inf", math.Inf(1), nil},
		{"minus inf", math.Inf(-1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockEngine{
				evaluate:      func(x float64) (float64, error) { return tt.fx, tt.err },
				differentiate: func(x float64) (float64, error) { return 1, nil },
			}

			res, err := solver.Solve(m, 0, solver.Config{})
			require.NoError(t, err)
			assert.Equal(t, solver.EvalFailed, res.Status)
			assert.Equal(t, 0, m.diffCalls)
		})
	}
}

func TestSolve_DerivativeFailures(t *testing.T) {
	tests := []struct {
		name string
		dfx  float64
		err  error
	}{
		{"error", 0, errors.New("not differentiable at x")},
		{"nan", math.NaN(), nil},
		{"inf", math.Inf(1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockEngine{
				evaluate:      func(x float64) (float64, error) { return 1, nil },
				differentiate: func(x float64) (float64, error) { return tt.dfx, tt.err },
			}

			res, err := solver.Solve(m, 0, solver.Config{})
			require.NoError(t, err)
			assert.Equal(t, solver.DerivativeFailed, res.Status)
		})
	}
}

func TestSolve_StepDivergence(t *testing.T) {
	// Large value over a tiny-but-trusted derivative: step magnitude blows
	// through the divergence bound.
	m := &mockEngine{
		evaluate:      func(x float64) (float64, error) { return 1e3, nil },
		differentiate: func(x float64) (float64, error) { return 1e-9, nil },
	}

	res, err := solver.Solve(m, 0, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.Diverged, res.Status)
}

func TestSolve_IterateDivergence(t *testing.T) {
	// A modest step from an already-huge iterate: the step passes its own
	// bound but pushes the next iterate over the magnitude bound.
	m := &mockEngine{
		evaluate:      func(x float64) (float64, error) { return 1, nil },
		differentiate: func(x float64) (float64, error) { return -1e-6, nil },
	}

	res, err := solver.Solve(m, 1e10-1, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.Diverged, res.Status)
}

func TestSolve_InvalidConfig(t *testing.T) {
	e := taped(func(x *autodiff.Var) *autodiff.Var { return x })

	for _, cfg := range []solver.Config{
		{Tolerance: -1},
		{Tolerance: math.NaN()},
		{MaxIterations: -5},
	} {
		_, err := solver.Solve(e, 0, cfg)
		assert.ErrorIs(t, err, solver.ErrInvalidConfig, "%+v", cfg)

		_, err = solver.FindRoot(e, 0, cfg)
		assert.ErrorIs(t, err, solver.ErrInvalidConfig, "%+v", cfg)
	}
}

func TestSolve_ZeroConfigUsesDefaults(t *testing.T) {
	iterations := 0
	m := &mockEngine{
		evaluate: func(x float64) (float64, error) {
			iterations++
			return 1, nil
		},
		differentiate: func(x float64) (float64, error) { return 0.5, nil },
	}

	// Constant f with a trusted derivative never converges and never trips
	// a guard, so the loop runs the full default budget.
	res, err := solver.Solve(m, 0, solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.Exhausted, res.Status)
	assert.Equal(t, solver.DefaultMaxIterations, res.Iterations)
	assert.Equal(t, solver.DefaultMaxIterations, iterations)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "converged", solver.Converged.String())
	assert.Equal(t, "flat derivative", solver.FlatDerivative.String())
	assert.Equal(t, "iteration budget exhausted", solver.Exhausted.String())
}
