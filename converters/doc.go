// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between matrix.Dense and
// gonum's mat package:
//   - ToGonum / FromGonum for whole matrices (any scalar with a float64 projection),
//   - VectorToGonum / VectorFromGonum for vectors,
//   - DeterminantLU / InverseLU: O(n³) LU-based kernels for Real matrices.
//
// Use converters to hand lvlalg matrices to numeric code built on gonum, or to
// cross-check exact cofactor results against floating-point LU factorization.
// Conversions copy; neither side aliases the other's storage.
package converters
