// SPDX-License-Identifier: MIT

package scalar

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Fraction is an exact rational number backed by math/big.
// The zero value is 0. Fractions are immutable: every operation allocates
// a fresh big.Rat and never touches the operands.
type Fraction struct {
	r *big.Rat
}

var (
	_ algebra.Field[Fraction] = Fraction{}
	_ algebra.Measurable      = Fraction{}
)

// NewFraction returns num/den in lowest terms.
// It fails with algebra.ErrDivisionByNull when den == 0.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, algebra.ErrDivisionByNull
	}

	return Fraction{r: big.NewRat(num, den)}, nil
}

// FractionOf returns the integer n as a Fraction.
func FractionOf(n int64) Fraction {
	return Fraction{r: new(big.Rat).SetInt64(n)}
}

// FractionFromRat copies r into a new Fraction; nil means 0.
func FractionFromRat(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}

	return Fraction{r: new(big.Rat).Set(r)}
}

// rat returns the backing value, substituting 0 for the zero Fraction.
// The result must be treated as read-only.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// Rat returns a copy of the underlying rational.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).Set(f.rat()) }

func (f Fraction) Add(other Fraction) Fraction {
	return Fraction{r: new(big.Rat).Add(f.rat(), other.rat())}
}

func (f Fraction) Negative() Fraction {
	return Fraction{r: new(big.Rat).Neg(f.rat())}
}

func (f Fraction) Multiply(other Fraction) Fraction {
	return Fraction{r: new(big.Rat).Mul(f.rat(), other.rat())}
}

func (f Fraction) Inner(other Fraction) Fraction { return f.Multiply(other) }

func (f Fraction) Null() Fraction { return Fraction{r: new(big.Rat)} }
func (f Fraction) Unit() Fraction { return FractionOf(1) }

func (f Fraction) IsNull() bool { return f.rat().Sign() == 0 }

func (f Fraction) IsUnit() bool { return f.rat().Cmp(big.NewRat(1, 1)) == 0 }

func (f Fraction) Equals(other Fraction) bool { return f.rat().Cmp(other.rat()) == 0 }

// Inverse returns 1/f or ErrDivisionByNull when f is 0.
func (f Fraction) Inverse() (Fraction, error) {
	if f.IsNull() {
		return Fraction{}, algebra.ErrDivisionByNull
	}

	return Fraction{r: new(big.Rat).Inv(f.rat())}, nil
}

func (f Fraction) Float64() float64 {
	v, _ := f.rat().Float64()
	return v
}

// String renders "n" for integers and "n/d" otherwise.
func (f Fraction) String() string { return f.rat().RatString() }
