package ops

import "github.com/radix-num/radix/internal/scalar"

// AddOp represents an addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs []*scalar.Value // [a, b]
	output *scalar.Value   // a + b
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *scalar.Value) *AddOp {
	return &AddOp{
		inputs: []*scalar.Value{a, b},
		output: output,
	}
}

// Backward computes input gradients for addition.
func (op *AddOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, outputGrad}
}

// Inputs returns the input nodes [a, b].
func (op *AddOp) Inputs() []*scalar.Value {
	return op.inputs
}

// Output returns the output node a + b.
func (op *AddOp) Output() *scalar.Value {
	return op.output
}
