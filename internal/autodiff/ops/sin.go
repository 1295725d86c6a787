package ops

import (
	"math"

	"github.com/radix-num/radix/internal/scalar"
)

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
type SinOp struct {
	input  *scalar.Value // x
	output *scalar.Value // sin(x)
}

// NewSinOp creates a new SinOp.
func NewSinOp(input, output *scalar.Value) *SinOp {
	return &SinOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for sin.
func (op *SinOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * math.Cos(op.input.Data())}
}

// Inputs returns the input node [x].
func (op *SinOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node sin(x).
func (op *SinOp) Output() *scalar.Value {
	return op.output
}
