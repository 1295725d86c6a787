package autodiff

import "github.com/radix-num/radix/internal/scalar"

// Backward computes gradients for the given output variable using its
// graph's tape.
//
// The output gradient is seeded with 1, so the returned map holds
// d(output)/d(node) for every node the output depends on.
//
// Example:
//
//	g := autodiff.NewGraph()
//	g.Tape().StartRecording()
//	x := g.Var(3.0)
//	y := x.Mul(x) // y = x²
//	grads := autodiff.Backward(y)
//	grad := grads[x.Node()] // 6.0
//
// Panics if no operations were recorded (recording was never started, or
// the output is a bare variable with no operations applied).
func Backward(output *Var) map[*scalar.Value]float64 {
	tape := output.graph.Tape()

	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget to call Tape().StartRecording()?)")
	}

	return tape.Backward(output.Node(), 1.0)
}
