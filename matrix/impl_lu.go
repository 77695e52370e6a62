// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/algebra"

const opLU = "LU"

// LU performs Doolittle LU decomposition on a square matrix m, exactly in T.
// It returns L (unit lower triangular) and U (upper triangular) with L×U == m.
// No row exchanges are made: a null pivot U[i][i] with rows left below it
// stops the factorization with ErrZeroPivot. A null last pivot is allowed
// and means m is singular.
//
// Errors:
//   - ErrNilMatrix, IncompatibleOperationError{OpLU} for non-square m.
//   - ErrZeroPivot.
//
// Complexity: O(n³) time, O(n²) space.
func LU[T algebra.Field[T]](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, incompatible(OpLU, err))
	}

	n := m.r
	l := newDenseZeroOK[T](n, n, m.opts)
	u := newDenseZeroOK[T](n, n, m.opts)
	for i := 0; i < n; i++ {
		l.data[i*n+i] = algebra.UnitOf[T]()
	}

	var sum T
	for i := 0; i < n; i++ {
		// U[i][j] for j >= i
		for j := i; j < n; j++ {
			sum = algebra.NullOf[T]()
			for k := 0; k < i; k++ {
				sum = sum.Add(l.data[i*n+k].Multiply(u.data[k*n+j]))
			}
			u.data[i*n+j] = m.data[i*n+j].Add(sum.Negative())
		}
		if i == n-1 {
			break
		}
		pivot := u.data[i*n+i]
		if pivot.IsNull() {
			return nil, nil, matrixErrorf(opLU, ErrZeroPivot)
		}
		inv, err := pivot.Inverse()
		if err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
		// L[j][i] for j > i
		for j := i + 1; j < n; j++ {
			sum = algebra.NullOf[T]()
			for k := 0; k < i; k++ {
				sum = sum.Add(l.data[j*n+k].Multiply(u.data[k*n+i]))
			}
			l.data[j*n+i] = m.data[j*n+i].Add(sum.Negative()).Multiply(inv)
		}
	}

	return l, u, nil
}
