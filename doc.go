// SPDX-License-Identifier: MIT

// Package lvlalg is a generic, exact-when-possible linear algebra engine:
// vectors, matrices and row reduction over any scalar type that brings its
// own arithmetic.
//
// What is inside:
//
//	algebra/    — capability contracts (Group, Ring, Field) every scalar implements
//	scalar/     — Integer, Fraction (exact rationals), Real, Complex + literal parsers
//	matrix/     — Vector[T], Dense[T]: arithmetic, determinants, adjugate, inverse, LU
//	echelon/    — RowOperation[T] and the four-phase reducer to reduced row echelon form
//	converters/ — bridges to gonum/mat for float64 cross-checks and LU kernels
//	cmd/lvlalg  — command-line front end over YAML/JSON documents
//
// Exactness follows the scalar: Fraction never rounds, Real and Complex
// compare within a tolerance. Operations that need division (inverse,
// reduction, solving) report algebra.ErrFieldCapability for ring-only
// scalars such as Integer instead of guessing.
//
// Quick example, a row reduction with its operation log:
//
//	m, _ := matrix.NewFromRows([][]scalar.Fraction{...})
//	red, _ := echelon.Reduce(m)
//	for _, op := range red.Operations {
//		fmt.Println(op) // "R1 <-> R2", "R2 * 1/2", ...
//	}
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
