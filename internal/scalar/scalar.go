// Package scalar defines the raw scalar node used by the autodiff graph.
//
// A Value is the low-level carrier of a single float64 in the computation
// graph. Operations reference Values by pointer identity: the backward pass
// accumulates gradients in a map keyed by *Value, so two nodes with equal
// payloads are still distinct graph positions.
package scalar

import "math"

// Value is a scalar node in the computation graph.
// It holds the payload produced by the forward pass; gradients live outside
// the node, in the map returned by the backward pass.
type Value struct {
	data float64
}

// New creates a new Value with the given payload.
func New(data float64) *Value {
	return &Value{data: data}
}

// Data returns the scalar payload.
func (v *Value) Data() float64 {
	return v.data
}

// IsFinite reports whether the payload is neither NaN nor infinite.
func (v *Value) IsFinite() bool {
	return !math.IsNaN(v.data) && !math.IsInf(v.data, 0)
}
