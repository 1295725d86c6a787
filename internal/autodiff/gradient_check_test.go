package autodiff_test

import (
	"math"
	"testing"

	"github.com/radix-num/radix/internal/autodiff"
)

// numericalGradient computes the gradient using central finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// tapedGradient computes df/dx at x with a fresh graph and tape.
func tapedGradient(fn autodiff.Func, x float64) float64 {
	g := autodiff.NewGraph()
	g.Tape().StartRecording()
	v := g.Var(x)
	y := fn(v)
	return autodiff.Backward(y)[v.Node()]
}

// TestGradientCheck compares tape gradients to central finite differences
// for a spread of compositions and evaluation points.
func TestGradientCheck(t *testing.T) {
	const epsilon = 1e-6

	tests := []struct {
		name   string
		taped  autodiff.Func
		plain  func(float64) float64
		points []float64
	}{
		{
			name:   "quadratic x²−2",
			taped:  func(x *autodiff.Var) *autodiff.Var { return x.Mul(x).SubScalar(2) },
			plain:  func(x float64) float64 { return x*x - 2 },
			points: []float64{-3, -0.5, 0.7, 2, 10},
		},
		{
			name: "cubic (x−1)(x−2)(x−3)",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.SubScalar(1).Mul(x.SubScalar(2)).Mul(x.SubScalar(3))
			},
			plain:  func(x float64) float64 { return (x - 1) * (x - 2) * (x - 3) },
			points: []float64{0.5, 1.9, 2.9, 5},
		},
		{
			name: "exp decay x·e^(−x)",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.Mul(x.Neg().Exp())
			},
			plain:  func(x float64) float64 { return x * math.Exp(-x) },
			points: []float64{-1, 0, 0.5, 3},
		},
		{
			name: "trig sin(x)·cos(x)",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.Sin().Mul(x.Cos())
			},
			plain:  func(x float64) float64 { return math.Sin(x) * math.Cos(x) },
			points: []float64{-2, 0.1, 1, math.Pi},
		},
		{
			name: "rational x/(1+x²)",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.Div(x.Mul(x).AddScalar(1))
			},
			plain:  func(x float64) float64 { return x / (1 + x*x) },
			points: []float64{-4, -1, 0, 2},
		},
		{
			name: "log barrier log(x)+1/x",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.Log().Add(x.Pow(-1))
			},
			plain:  func(x float64) float64 { return math.Log(x) + 1/x },
			points: []float64{0.5, 1, 2, 8},
		},
		{
			name: "sqrt tanh sqrt(x)·tanh(x)",
			taped: func(x *autodiff.Var) *autodiff.Var {
				return x.Sqrt().Mul(x.Tanh())
			},
			plain:  func(x float64) float64 { return math.Sqrt(x) * math.Tanh(x) },
			points: []float64{0.25, 1, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.points {
				got := tapedGradient(tt.taped, x)
				want := numericalGradient(tt.plain, x, epsilon)

				// Central differences carry O(ε²) truncation error plus
				// cancellation; a relative tolerance of 1e-5 covers the
				// point spread above.
				tol := 1e-5 * math.Max(1, math.Abs(want))
				if math.Abs(got-want) > tol {
					t.Errorf("at x=%v: taped gradient %v, numerical %v", x, got, want)
				}
			}
		})
	}
}
