package ops

import "github.com/radix-num/radix/internal/scalar"

// SqrtOp represents the square root operation: y = sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 1 / (2 * sqrt(x)) = 0.5 / y
//   - grad_input = grad_output * 0.5 / output
type SqrtOp struct {
	input  *scalar.Value // x
	output *scalar.Value // sqrt(x)
}

// NewSqrtOp creates a new SqrtOp.
func NewSqrtOp(input, output *scalar.Value) *SqrtOp {
	return &SqrtOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for sqrt.
//
// Since d(sqrt(x))/dx = 0.5 / sqrt(x), and we have sqrt(x) as output:
// grad_input = grad_output * 0.5 / output. At x == 0 this divides by zero
// and yields a non-finite gradient, which is the honest answer.
func (op *SqrtOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * 0.5 / op.output.Data()}
}

// Inputs returns the input node [x].
func (op *SqrtOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node sqrt(x).
func (op *SqrtOp) Output() *scalar.Value {
	return op.output
}
