// Package matrix provides generic vectors and dense matrices over any scalar
// type implementing the algebra capability layers.
//
// The matrix package provides:
//
//   - Vector[T]: fixed-dimension vectors with addition, negation, inner
//     product, scaling, division (field scalars) and a float norm for
//     measurable scalars.
//   - Dense[T]: row-major matrices with bounds-checked indexers, row/column
//     vector views (owned copies), arithmetic, integer powers and transpose.
//   - The determinant family: cofactor-expansion Determinant (exact in any
//     commutative ring), minors, cofactors, adjugate and Inverse, plus an
//     O(n³) DeterminantByElimination for field scalars.
//
// Errors:
//
//	Shape violations are reported as IncompatibleOperationError tagged with
//	the operation (Addition, Multiplication, Determinant, Inverse, Trace,
//	Diagonal, Power, Inner). Index violations wrap ErrOutOfRange.
//
// Configuration:
//
//	The default slicing orientation (Row or Column) is an Option carried by
//	each matrix, never process-wide state.
//
// See the examples in this package for usage patterns.
package matrix
