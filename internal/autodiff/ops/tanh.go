package ops

import "github.com/radix-num/radix/internal/scalar"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x) = 1 - y²
type TanhOp struct {
	input  *scalar.Value // x
	output *scalar.Value // tanh(x)
}

// NewTanhOp creates a new TanhOp.
func NewTanhOp(input, output *scalar.Value) *TanhOp {
	return &TanhOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for tanh.
func (op *TanhOp) Backward(outputGrad float64) []float64 {
	y := op.output.Data()
	return []float64{outputGrad * (1 - y*y)}
}

// Inputs returns the input node [x].
func (op *TanhOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node tanh(x).
func (op *TanhOp) Output() *scalar.Value {
	return op.output
}
