package ops

import (
	"math"

	"github.com/radix-num/radix/internal/scalar"
)

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
type CosOp struct {
	input  *scalar.Value // x
	output *scalar.Value // cos(x)
}

// NewCosOp creates a new CosOp.
func NewCosOp(input, output *scalar.Value) *CosOp {
	return &CosOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for cos.
func (op *CosOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad * math.Sin(op.input.Data())}
}

// Inputs returns the input node [x].
func (op *CosOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node cos(x).
func (op *CosOp) Output() *scalar.Value {
	return op.output
}
