// Copyright 2026 Radix Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation for
// scalar functions.
//
// Operations on Var values are recorded on a gradient tape during the
// forward pass; walking the tape backward yields exact derivatives via the
// chain rule, with no symbolic manipulation or finite-difference
// approximation.
//
// Example:
//
//	g := autodiff.NewGraph()
//	g.Tape().StartRecording()
//
//	x := g.Var(3.0)
//	y := x.Mul(x).SubScalar(2) // y = x² − 2
//
//	grads := autodiff.Backward(y)
//	fmt.Println(grads[x.Node()]) // dy/dx = 2x = 6.0
package autodiff

import (
	"github.com/radix-num/radix/internal/autodiff"
	"github.com/radix-num/radix/internal/scalar"
)

// Value is the raw scalar graph node. Gradient maps returned by Backward
// are keyed by *Value; obtain a variable's key with Var.Node().
type Value = scalar.Value

// Graph performs forward scalar operations and records them for
// differentiation.
type Graph = autodiff.Graph

// NewGraph creates a new Graph with an empty tape.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Var is a scalar graph node with operator methods.
type Var = autodiff.Var

// Func is a scalar function expressed as a composition of Var operations.
type Func = autodiff.Func

// Tape records operations for automatic differentiation.
type Tape = autodiff.Tape

// NewTape creates a new gradient tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// Backward computes gradients for the given output variable, seeding the
// output gradient with 1.
var Backward = autodiff.Backward
