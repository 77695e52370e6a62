// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense and Vector.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state. The default slicing orientation
//     and unit tolerance are carried per matrix instance and preserved by Clone.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVectorType is the orientation used by Vector/SetVector/Vectors
	// when no explicit VectorType is passed.
	DefaultVectorType = Row

	// DefaultUnitTolerance is the tolerance used by Vector.IsUnit: |‖v‖ - 1| ≤ tol.
	DefaultUnitTolerance = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVectorTypeInvalid    = "matrix: WithVectorType: unknown VectorType"
	panicUnitToleranceInvalid = "matrix: WithUnitTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	vectorType    VectorType // DefaultVectorType
	unitTolerance float64    // DefaultUnitTolerance
}

// VectorType returns the resolved default orientation.
func (o Options) VectorType() VectorType { return o.vectorType }

// UnitTolerance returns the resolved unit tolerance.
func (o Options) UnitTolerance() float64 { return o.unitTolerance }

// ---------- Constructors (WithX) ----------

// WithVectorType sets the orientation used when a matrix is sliced or
// assembled without an explicit VectorType.
//
// Errors:
//   - Panics with a stable message when k is neither Row nor Column.
//
// AI-Hints:
//   - Replaces a process-wide "default vector type" setting; pass it to the
//     constructor of every matrix that should iterate by columns.
func WithVectorType(k VectorType) Option {
	if !k.valid() {
		panic(panicVectorTypeInvalid)
	}

	return func(o *Options) { o.vectorType = k }
}

// WithRowVectors is shorthand for WithVectorType(Row).
func WithRowVectors() Option { return WithVectorType(Row) }

// WithColumnVectors is shorthand for WithVectorType(Column).
func WithColumnVectors() Option { return WithVectorType(Column) }

// WithUnitTolerance sets the tolerance used by Vector.IsUnit for vectors
// extracted from the matrix.
//
// Errors:
//   - Panics when tol is NaN, ±Inf or negative.
func WithUnitTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicUnitToleranceInvalid)
	}

	return func(o *Options) { o.unitTolerance = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		vectorType:    DefaultVectorType,
		unitTolerance: DefaultUnitTolerance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for constructors.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
