package ops

import (
	"math"

	"github.com/radix-num/radix/internal/scalar"
)

// AbsOp represents the absolute value operation: output = |x|.
//
// Backward pass:
//   - d|x|/dx = sign(x) for x != 0
//   - at x == 0 the derivative is undefined; Backward reports NaN so that
//     non-finite derivative checks downstream can reject the point instead
//     of silently picking a subgradient
type AbsOp struct {
	input  *scalar.Value // x
	output *scalar.Value // |x|
}

// NewAbsOp creates a new AbsOp.
func NewAbsOp(input, output *scalar.Value) *AbsOp {
	return &AbsOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for absolute value.
func (op *AbsOp) Backward(outputGrad float64) []float64 {
	x := op.input.Data()
	switch {
	case x > 0:
		return []float64{outputGrad}
	case x < 0:
		return []float64{-outputGrad}
	default:
		return []float64{math.NaN()}
	}
}

// Inputs returns the input node [x].
func (op *AbsOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node |x|.
func (op *AbsOp) Output() *scalar.Value {
	return op.output
}
