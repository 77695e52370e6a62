// SPDX-License-Identifier: MIT

// Package echelon implements elementary row operations and the row-echelon
// reducer over any matrix.Dense[T].
//
// # Row operations
//
// RowOperation[T] is an immutable value of one of three kinds:
//
//	op, _ := echelon.Switching[scalar.Real](0, 1)   // R1 <-> R2
//	op, _ = echelon.Scaling(0, scalar.Real(2))      // R1 * 2
//	op, _ = echelon.Substitution(0, 1, scalar.Real(-3)) // R2 + R1 * -3
//
// Constructors reject null scales, identical rows and negative indices
// (ErrInvalidRowOperation). ActOn returns a transformed copy and reports a
// RowIndexError (ErrIncompatibleRowOperation) when the matrix is too small.
//
// # Reduction
//
// Reducer runs up to four phases on a private copy of its input:
//
//   - ToSortedForm: null rows last, pivot rows by non-decreasing pivot column.
//   - ToEchelonForm: strictly increasing pivots.
//   - ToUnitPivots: every pivot equals Unit().
//   - ToReducedEchelonForm: every entry above a pivot is null.
//
// Reduce additionally returns the ordered operation log; Reduction.Transform
// folds it into one matrix E with E × input == result.
//
// WithIgnoredColumns(n) excludes the last n columns from pivot search, which
// is how Solve ([A | b]) and InverseGaussJordan ([A | I]) are built.
//
// # Scalars
//
// Sorting works over any ring. Elimination and unit pivots need
// multiplicative inverses; ring-only scalars (scalar.Integer) fail with
// algebra.ErrFieldCapability instead of looping.
//
// # Complexity
//
//   - Reduction: O(r² · c) row operations, each O(c).
//   - Predicates: O(r · c).
package echelon
