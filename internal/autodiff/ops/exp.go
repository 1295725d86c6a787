package ops

import "github.com/radix-num/radix/internal/scalar"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input  *scalar.Value // x
	output *scalar.Value // exp(x)
}

// NewExpOp creates a new ExpOp.
func NewExpOp(input, output *scalar.Value) *ExpOp {
	return &ExpOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op *ExpOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.output.Data()}
}

// Inputs returns the input node [x].
func (op *ExpOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node exp(x).
func (op *ExpOp) Output() *scalar.Value {
	return op.output
}
