// Copyright 2026 Radix Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides differentiation engines for the solver.
//
// Three implementations of solver.Engine are available:
//   - Taped: reverse-mode automatic differentiation over an autodiff.Func
//   - Dual: forward-mode automatic differentiation over gonum dual numbers
//   - Finite: central finite-difference approximation over a plain function
//
// The solver treats all three identically; pick by how the function is
// expressed and how exact the derivative needs to be.
package engine

import (
	"github.com/radix-num/radix/internal/engine"
)

// Taped is a reverse-mode automatic differentiation engine.
type Taped = engine.Taped

// NewTaped creates a reverse-mode engine for the given function.
var NewTaped = engine.NewTaped

// Dual is a forward-mode automatic differentiation engine.
type Dual = engine.Dual

// DualFunc is a scalar function expressed over gonum dual numbers.
type DualFunc = engine.DualFunc

// NewDual creates a forward-mode engine for the given function.
var NewDual = engine.NewDual

// Finite is a central finite-difference engine.
type Finite = engine.Finite

// NewFinite creates a finite-difference engine for the given function.
// step is the differencing step; 0 selects the formula's default.
var NewFinite = engine.NewFinite
