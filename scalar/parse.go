// SPDX-License-Identifier: MIT

// Package scalar: literal parsing into a declared set.
//
// Policy:
//   - A literal is accepted when it belongs to the requested set or a narrower
//     one (an integer literal is a valid Real, Fraction and Complex).
//   - A literal that only fits a wider set fails with algebra.IncorrectSetError
//     naming both sets, e.g. "2i" parsed as Real → {Want: real, Got: complex}.
//   - Text that is no number at all fails with ErrSyntax.

package scalar

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Set names used in IncorrectSetError and by the CLI loader.
const (
	SetInteger  = "integer"
	SetRational = "rational"
	SetReal     = "real"
	SetComplex  = "complex"
)

// ErrSyntax reports a literal that is not a number in any supported set.
var ErrSyntax = errors.New("scalar: invalid literal")

// parseErrorf tags err with the offending literal.
func parseErrorf(s string, err error) error {
	return fmt.Errorf("parse %q: %w", s, err)
}

// Classify returns the narrowest set the literal belongs to, or ErrSyntax.
func Classify(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return SetInteger, nil
	}
	if _, ok := new(big.Rat).SetString(s); ok {
		// Decimal literals such as "0.5" are exact rationals; only inputs that
		// also need float syntax (exponents beyond Rat, "Inf") fall to real.
		return SetRational, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return SetReal, nil
	}
	if c, err := strconv.ParseComplex(s, 128); err == nil {
		if imag(c) == 0 {
			return SetReal, nil
		}
		return SetComplex, nil
	}

	return "", parseErrorf(s, ErrSyntax)
}

// mismatch builds the error for a literal outside the wanted set.
func mismatch(s, want string) error {
	got, err := Classify(s)
	if err != nil {
		return err
	}

	return parseErrorf(s, algebra.IncorrectSetError{Want: want, Got: got})
}

// ParseInteger parses a base-10 int64 literal.
func ParseInteger(s string) (Integer, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, mismatch(s, SetInteger)
	}

	return Integer(v), nil
}

// ParseFraction parses "n", "n/d" or an exact decimal such as "0.25".
func ParseFraction(s string) (Fraction, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Fraction{}, mismatch(s, SetRational)
	}

	return Fraction{r: r}, nil
}

// ParseReal parses a float literal; rational literals ("1/3") are accepted
// and rounded to the nearest float64.
func ParseReal(s string) (Real, error) {
	t := strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(t, 64); err == nil {
		return Real(v), nil
	}
	if r, ok := new(big.Rat).SetString(t); ok {
		v, _ := r.Float64()
		return Real(v), nil
	}
	if c, err := strconv.ParseComplex(t, 128); err == nil && imag(c) == 0 {
		return Real(real(c)), nil
	}

	return 0, mismatch(s, SetReal)
}

// ParseComplex parses "a+bi", "bi", a real or a rational literal.
func ParseComplex(s string) (Complex, error) {
	t := strings.TrimSpace(s)
	if c, err := strconv.ParseComplex(t, 128); err == nil {
		return Complex(c), nil
	}
	if r, ok := new(big.Rat).SetString(t); ok {
		v, _ := r.Float64()
		return Complex(complex(v, 0)), nil
	}

	return 0, parseErrorf(s, ErrSyntax)
}
