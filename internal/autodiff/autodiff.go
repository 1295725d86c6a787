// Package autodiff implements reverse-mode automatic differentiation for
// scalar functions.
//
// Architecture:
//   - Graph: performs forward scalar operations and records them
//   - Tape: ordered operation log consumed by the backward pass
//   - ops.Operation: each primitive (Add, Mul, Exp, ...) implements its
//     own backward rule
//   - Reverse-mode AD: gradients flow output-to-input via the chain rule
//
// Usage:
//
//	g := autodiff.NewGraph()
//	g.Tape().StartRecording()
//	x := g.Var(3.0)
//	y := x.Mul(x) // y = x²
//	grads := g.Tape().Backward(y.Node(), 1.0)
//	fmt.Println(grads[x.Node()]) // dy/dx = 2x = 6.0
package autodiff

import (
	"math"

	"github.com/radix-num/radix/internal/autodiff/ops"
	"github.com/radix-num/radix/internal/scalar"
)

// Graph performs forward scalar operations and records them on a Tape for
// later differentiation. A Graph is not safe for concurrent use; give each
// goroutine its own.
type Graph struct {
	tape *Tape
}

// NewGraph creates a new Graph with an empty tape.
func NewGraph() *Graph {
	return &Graph{tape: NewTape()}
}

// Tape returns the gradient tape for manual control.
// Useful for:
//   - Starting/stopping recording
//   - Clearing tape between iterations
//   - Inspecting recorded operations
func (g *Graph) Tape() *Tape {
	return g.tape
}

// Var creates a new variable node with the given value.
func (g *Graph) Var(x float64) *Var {
	return &Var{node: scalar.New(x), graph: g}
}

// Const creates a new constant node with the given value.
// Constants are ordinary nodes; they simply never appear as the
// differentiation target, so their accumulated gradients are ignored.
func (g *Graph) Const(c float64) *Var {
	return &Var{node: scalar.New(c), graph: g}
}

// Var is a scalar graph node with operator methods. Every operation
// produces a new node and, while the tape is recording, logs the op for
// the backward pass.
type Var struct {
	node  *scalar.Value
	graph *Graph
}

// Node returns the underlying raw node, the key under which gradients for
// this variable appear in the Backward map.
func (v *Var) Node() *scalar.Value {
	return v.node
}

// Graph returns the graph this variable belongs to.
func (v *Var) Graph() *Graph {
	return v.graph
}

// Data returns the scalar payload.
func (v *Var) Data() float64 {
	return v.node.Data()
}

// Func is a scalar function expressed as a composition of Var operations.
// The argument and result belong to the same Graph.
type Func func(x *Var) *Var

// Add returns v + o.
func (v *Var) Add(o *Var) *Var {
	out := &Var{node: scalar.New(v.Data() + o.Data()), graph: v.graph}
	v.graph.tape.Record(ops.NewAddOp(v.node, o.node, out.node))
	return out
}

// Sub returns v - o.
func (v *Var) Sub(o *Var) *Var {
	out := &Var{node: scalar.New(v.Data() - o.Data()), graph: v.graph}
	v.graph.tape.Record(ops.NewSubOp(v.node, o.node, out.node))
	return out
}

// Mul returns v * o.
func (v *Var) Mul(o *Var) *Var {
	out := &Var{node: scalar.New(v.Data() * o.Data()), graph: v.graph}
	v.graph.tape.Record(ops.NewMulOp(v.node, o.node, out.node))
	return out
}

// Div returns v / o.
func (v *Var) Div(o *Var) *Var {
	out := &Var{node: scalar.New(v.Data() / o.Data()), graph: v.graph}
	v.graph.tape.Record(ops.NewDivOp(v.node, o.node, out.node))
	return out
}

// Neg returns -v.
func (v *Var) Neg() *Var {
	out := &Var{node: scalar.New(-v.Data()), graph: v.graph}
	v.graph.tape.Record(ops.NewNegOp(v.node, out.node))
	return out
}

// Abs returns |v|. The derivative is undefined at 0; the backward pass
// reports NaN there.
func (v *Var) Abs() *Var {
	out := &Var{node: scalar.New(math.Abs(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewAbsOp(v.node, out.node))
	return out
}

// Pow returns v^k for a constant real exponent k.
func (v *Var) Pow(k float64) *Var {
	out := &Var{node: scalar.New(math.Pow(v.Data(), k)), graph: v.graph}
	v.graph.tape.Record(ops.NewPowOp(v.node, out.node, k))
	return out
}

// Exp returns e^v.
func (v *Var) Exp() *Var {
	out := &Var{node: scalar.New(math.Exp(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewExpOp(v.node, out.node))
	return out
}

// Log returns the natural logarithm of v.
func (v *Var) Log() *Var {
	out := &Var{node: scalar.New(math.Log(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewLogOp(v.node, out.node))
	return out
}

// Sin returns sin(v).
func (v *Var) Sin() *Var {
	out := &Var{node: scalar.New(math.Sin(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewSinOp(v.node, out.node))
	return out
}

// Cos returns cos(v).
func (v *Var) Cos() *Var {
	out := &Var{node: scalar.New(math.Cos(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewCosOp(v.node, out.node))
	return out
}

// Sqrt returns the square root of v.
func (v *Var) Sqrt() *Var {
	out := &Var{node: scalar.New(math.Sqrt(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewSqrtOp(v.node, out.node))
	return out
}

// Tanh returns tanh(v).
func (v *Var) Tanh() *Var {
	out := &Var{node: scalar.New(math.Tanh(v.Data())), graph: v.graph}
	v.graph.tape.Record(ops.NewTanhOp(v.node, out.node))
	return out
}

// AddScalar returns v + c.
func (v *Var) AddScalar(c float64) *Var {
	return v.Add(v.graph.Const(c))
}

// SubScalar returns v - c.
func (v *Var) SubScalar(c float64) *Var {
	return v.Sub(v.graph.Const(c))
}

// MulScalar returns v * c.
func (v *Var) MulScalar(c float64) *Var {
	return v.Mul(v.graph.Const(c))
}

// DivScalar returns v / c.
func (v *Var) DivScalar(c float64) *Var {
	return v.Div(v.graph.Const(c))
}
