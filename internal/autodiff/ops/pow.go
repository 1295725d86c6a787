package ops

import (
	"math"

	"github.com/radix-num/radix/internal/scalar"
)

// PowOp represents raising a node to a fixed real exponent: output = x^k.
//
// Backward pass:
//   - d(x^k)/dx = k * x^(k-1)
//
// The exponent is a constant, not a graph node, so no gradient flows to it.
type PowOp struct {
	input    *scalar.Value // x
	output   *scalar.Value // x^k
	exponent float64       // k
}

// NewPowOp creates a new PowOp with the given constant exponent.
func NewPowOp(input, output *scalar.Value, exponent float64) *PowOp {
	return &PowOp{
		input:    input,
		output:   output,
		exponent: exponent,
	}
}

// Backward computes the input gradient for the power operation.
func (op *PowOp) Backward(outputGrad float64) []float64 {
	x := op.input.Data()
	grad := outputGrad * op.exponent * math.Pow(x, op.exponent-1)
	return []float64{grad}
}

// Inputs returns the input node [x].
func (op *PowOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node x^k.
func (op *PowOp) Output() *scalar.Value {
	return op.output
}
