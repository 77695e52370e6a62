// SPDX-License-Identifier: MIT

// Package scalar provides reference scalar types implementing the algebra
// capability layers:
//
//   - Real     — float64 with tolerant equality (Field).
//   - Integer  — int64 (Ring only; no multiplicative inverse).
//   - Fraction — exact rational over math/big (Field).
//   - Complex  — complex128; Inner conjugates the right operand (Field).
//
// The package also parses literals into a declared set and reports
// algebra.IncorrectSetError when a literal belongs to a wider set.
package scalar
