package autodiff

import (
	"github.com/radix-num/radix/internal/autodiff/ops"
	"github.com/radix-num/radix/internal/scalar"
)

// Tape records operations during the forward pass and computes gradients
// during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewTape()
//	tape.StartRecording()
//	// ... perform operations producing y ...
//	gradients := tape.Backward(y.Node(), 1.0)
type Tape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether tape is currently recording
}

// NewTape creates a new gradient tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 32), // Pre-allocate for common case
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, dropping all recorded operations and the graph
// nodes they reference. This is the release point for per-evaluation
// state: callers must Clear between iterations so no graph accumulates
// across root-finding steps.
// Recording state is preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
	// Note: recording state is preserved, call StopRecording() explicitly if needed
}

// Backward computes gradients for all inputs by walking the tape in reverse.
//
// Algorithm:
//  1. Seed the requested output node with outputGrad (typically 1 for a
//     scalar objective)
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using the chain rule
//  4. Accumulate gradients when the same node is used multiple times
//
// The seed goes on the node the caller asks about, not on the last
// recorded operation: operations recorded after output was produced are
// dead for this differentiation and receive no gradient.
//
// Returns a map from node to its accumulated gradient.
func (t *Tape) Backward(output *scalar.Value, outputGrad float64) map[*scalar.Value]float64 {
	grads := make(map[*scalar.Value]float64)
	if len(t.operations) == 0 {
		return grads
	}

	// Stop recording during backward pass to prevent recording gradient operations
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	// Initialize with output gradient
	grads[output] = outputGrad

	// Walk tape backwards
	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		opOutputGrad, hasGrad := grads[op.Output()]
		if !hasGrad {
			// No gradient flows to this operation.
			continue
		}
		inputGrads := op.Backward(opOutputGrad)
		t.accumulateGrads(op, inputGrads, grads)
	}

	return grads
}

// accumulateGrads accumulates gradients for each input node.
func (t *Tape) accumulateGrads(op ops.Operation, inputGrads []float64, grads map[*scalar.Value]float64) {
	inputs := op.Inputs()
	for j, input := range inputs {
		if j >= len(inputGrads) {
			break
		}
		grads[input] += inputGrads[j]
	}
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}
