package ops

import "github.com/radix-num/radix/internal/scalar"

// LogOp represents the natural logarithm: y = log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//
// For x <= 0 the forward pass already produced NaN or -Inf; the backward
// pass likewise yields a non-finite gradient for downstream checks.
type LogOp struct {
	input  *scalar.Value // x
	output *scalar.Value // log(x)
}

// NewLogOp creates a new LogOp.
func NewLogOp(input, output *scalar.Value) *LogOp {
	return &LogOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input gradient for log.
func (op *LogOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad / op.input.Data()}
}

// Inputs returns the input node [x].
func (op *LogOp) Inputs() []*scalar.Value {
	return []*scalar.Value{op.input}
}

// Output returns the output node log(x).
func (op *LogOp) Output() *scalar.Value {
	return op.output
}
