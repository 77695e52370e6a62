// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Tolerance is the absolute/relative epsilon used by approximate scalars
// (Real, Complex) for equality and identity checks.
const Tolerance = 1e-9

// Real is a float64 scalar with tolerant equality.
type Real float64

var (
	_ algebra.Field[Real] = Real(0)
	_ algebra.Measurable  = Real(0)
)

// closeTo reports |a-b| ≤ Tolerance·max(1, |a|, |b|).
func closeTo(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

func (r Real) Add(other Real) Real      { return r + other }
func (r Real) Negative() Real           { return -r }
func (r Real) Multiply(other Real) Real { return r * other }
func (r Real) Inner(other Real) Real    { return r * other }
func (r Real) Null() Real               { return 0 }
func (r Real) Unit() Real               { return 1 }
func (r Real) IsNull() bool             { return math.Abs(float64(r)) <= Tolerance }
func (r Real) IsUnit() bool             { return closeTo(float64(r), 1) }
func (r Real) Equals(other Real) bool   { return closeTo(float64(r), float64(other)) }
func (r Real) Float64() float64         { return float64(r) }

// Inverse returns 1/r or ErrDivisionByNull when r is (approximately) zero.
func (r Real) Inverse() (Real, error) {
	if r.IsNull() {
		return 0, algebra.ErrDivisionByNull
	}

	return 1 / r, nil
}

func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
