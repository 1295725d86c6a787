// Package engine provides differentiation engines for the solver: a
// reverse-mode tape engine, a forward-mode dual-number engine, and a
// finite-difference engine. All three satisfy solver.Engine, and the
// solver cannot tell them apart.
package engine

import (
	"fmt"

	"github.com/radix-num/radix/internal/autodiff"
)

// Taped is a reverse-mode automatic differentiation engine over an
// autodiff.Func.
//
// Evaluate runs the function without recording. Differentiate records the
// forward pass on the graph's tape, seeds the backward pass with 1, and
// reads the gradient at the input node. Either way the tape is cleared on
// every exit path of the call, so no graph state survives an iteration or
// leaks out of the outer search.
//
// A Taped engine owns its graph and is not safe for concurrent use; give
// each concurrent search its own NewTaped value.
type Taped struct {
	fn    autodiff.Func
	graph *autodiff.Graph
}

// NewTaped creates a reverse-mode engine for the given function.
func NewTaped(fn autodiff.Func) *Taped {
	return &Taped{
		fn:    fn,
		graph: autodiff.NewGraph(),
	}
}

// Evaluate returns f(x). A panic in the user function (domain error,
// nil dereference in a closure) is recovered and reported as an error.
func (e *Taped) Evaluate(x float64) (fx float64, err error) {
	defer e.graph.Tape().Clear()
	defer recoverToError(&err, "evaluate")

	// No recording: the value alone is wanted, and building an op log
	// here would just be freed again before the derivative pass.
	e.graph.Tape().StopRecording()
	y := e.fn(e.graph.Var(x))
	return y.Data(), nil
}

// Differentiate returns f'(x), computed by recording the forward pass and
// walking the tape backward.
func (e *Taped) Differentiate(x float64) (dfx float64, err error) {
	tape := e.graph.Tape()
	defer tape.Clear()
	defer recoverToError(&err, "differentiate")

	tape.StartRecording()
	defer tape.StopRecording()

	v := e.graph.Var(x)
	y := e.fn(v)

	if tape.NumOps() == 0 {
		// No operations touched x: f is either the identity (f' = 1) or
		// independent of x (f' = 0).
		if y.Node() == v.Node() {
			return 1, nil
		}
		return 0, nil
	}

	grads := tape.Backward(y.Node(), 1.0)
	return grads[v.Node()], nil
}

// recoverToError converts a panic into *err so the solver sees a fallible
// engine instead of a crashing one.
func recoverToError(err *error, op string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("engine: %s panicked: %v", op, r)
	}
}
