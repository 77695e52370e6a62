// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Complex is a complex128 scalar.
// Inner conjugates the right operand, so v·v is the squared Euclidean norm.
type Complex complex128

var (
	_ algebra.Field[Complex] = Complex(0)
	_ algebra.Measurable     = Complex(0)
)

func (c Complex) Add(other Complex) Complex      { return c + other }
func (c Complex) Negative() Complex              { return -c }
func (c Complex) Multiply(other Complex) Complex { return c * other }
func (c Complex) Null() Complex                  { return 0 }
func (c Complex) Unit() Complex                  { return 1 }

// Inner returns c·conj(other).
func (c Complex) Inner(other Complex) Complex {
	return c * Complex(cmplx.Conj(complex128(other)))
}

func (c Complex) IsNull() bool { return cmplx.Abs(complex128(c)) <= Tolerance }

func (c Complex) IsUnit() bool { return c.Equals(1) }

func (c Complex) Equals(other Complex) bool {
	a, b := complex128(c), complex128(other)
	scale := math.Max(1, math.Max(cmplx.Abs(a), cmplx.Abs(b)))
	return cmplx.Abs(a-b) <= Tolerance*scale
}

// Inverse returns 1/c or ErrDivisionByNull when |c| ≈ 0.
func (c Complex) Inverse() (Complex, error) {
	if c.IsNull() {
		return 0, algebra.ErrDivisionByNull
	}

	return 1 / c, nil
}

// Float64 is the lossy projection onto the real part.
func (c Complex) Float64() float64 { return real(c) }

// Real and Imag expose the components.
func (c Complex) Real() float64 { return real(c) }
func (c Complex) Imag() float64 { return imag(c) }

// String renders "a+bi" without the parentheses strconv adds; purely real
// values render as a Real would.
func (c Complex) String() string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', -1, 64)
	}
	s := strconv.FormatComplex(complex128(c), 'g', -1, 128)

	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}
