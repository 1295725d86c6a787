package ops

import "github.com/radix-num/radix/internal/scalar"

// NegOp represents negation: output = -x.
type NegOp struct {
	input  *scalar.Value // x
	output *scalar.Value // -x
}

// NewNegOp creates a new NegOp.
func NewNegOp(input, output *scalar.Value) *NegOp {
	return &NegOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for negation.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}

// Inputs returns the input node [x].
func (op *NegOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node -x.
func (op *NegOp) Output() *scalar.Value {
	return op.output
}
