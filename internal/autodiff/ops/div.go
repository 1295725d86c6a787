package ops

import "github.com/radix-num/radix/internal/scalar"

// DivOp represents a division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
//
// Division by zero is not guarded here: the forward pass already produced
// ±Inf or NaN, and the backward pass propagates the same non-finite values
// for the caller's non-finite checks to catch.
type DivOp struct {
	inputs []*scalar.Value // [a, b]
	output *scalar.Value   // a / b
}

// NewDivOp creates a new DivOp.
func NewDivOp(a, b, output *scalar.Value) *DivOp {
	return &DivOp{
		inputs: []*scalar.Value{a, b},
		output: output,
	}
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0].Data(), op.inputs[1].Data()
	gradA := outputGrad / b
	gradB := -outputGrad * a / (b * b)
	return []float64{gradA, gradB}
}

// Inputs returns the input nodes [a, b].
func (op *DivOp) Inputs() []*scalar.Value {
	return op.inputs
}

// Output returns the output node a / b.
func (op *DivOp) Output() *scalar.Value {
	return op.output
}
