// Copyright 2026 Radix Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides Newton–Raphson root finding for scalar
// functions.
//
// The solver depends only on the Engine interface — a capability that
// evaluates f(x) and f'(x) at a point. The engine package ships
// reverse-mode, forward-mode, and finite-difference implementations; any
// other implementation of the two methods works the same.
//
// Example:
//
//	// f(x) = x² − 2
//	e := engine.NewTaped(func(x *autodiff.Var) *autodiff.Var {
//	    return x.Mul(x).SubScalar(2)
//	})
//
//	root, err := solver.FindRoot(e, 1.0, solver.Config{})
//	if err != nil {
//	    // errors.Is(err, solver.ErrNoRoot)
//	}
//	fmt.Println(root) // 1.4142...
//
// FindRoot collapses every failure cause into ErrNoRoot. Callers who need
// to know why a search failed use Solve, which returns a Result carrying a
// Status enum instead.
package solver

import (
	"github.com/radix-num/radix/internal/solver"
)

// Engine evaluates a scalar function and its first derivative at a point.
type Engine = solver.Engine

// Config holds the solver configuration. Zero values select the defaults.
type Config = solver.Config

// Result is the tagged outcome of a Solve call.
type Result = solver.Result

// Status classifies the outcome of a Solve call.
type Status = solver.Status

// Solve outcomes.
const (
	Converged        Status = solver.Converged
	EvalFailed       Status = solver.EvalFailed
	DerivativeFailed Status = solver.DerivativeFailed
	FlatDerivative   Status = solver.FlatDerivative
	Diverged         Status = solver.Diverged
	Exhausted        Status = solver.Exhausted
)

// Default configuration values.
const (
	DefaultTolerance     = solver.DefaultTolerance
	DefaultMaxIterations = solver.DefaultMaxIterations
)

// ErrNoRoot is returned by FindRoot when no root is found for any reason.
var ErrNoRoot = solver.ErrNoRoot

// ErrInvalidConfig is returned for a non-positive tolerance or iteration
// budget.
var ErrInvalidConfig = solver.ErrInvalidConfig

// FindRoot runs Newton–Raphson iteration from initialGuess and returns the
// converged root, or ErrNoRoot when the search fails.
var FindRoot = solver.FindRoot

// Solve runs Newton–Raphson iteration and returns the tagged outcome with
// the specific failure cause.
var Solve = solver.Solve
