// Package ops defines operation interfaces and implementations for scalar
// automatic differentiation.
//
// Each operation records its input and output nodes during the forward pass
// and computes input gradients during the backward pass:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division
//   - NegOp, AbsOp, PowOp, ExpOp, LogOp, SinOp, CosOp, SqrtOp, TanhOp:
//     unary primitives with the usual calculus rules
package ops

import "github.com/radix-num/radix/internal/scalar"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input node.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)] (gradient flows equally to both inputs)
	Backward(outputGrad float64) []float64

	// Inputs returns the input nodes for this operation.
	Inputs() []*scalar.Value

	// Output returns the output node produced by this operation.
	Output() *scalar.Value
}
