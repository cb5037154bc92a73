// Package arith implements the elementary arithmetic operations that
// calculations are built from.
//
// All functions are pure and total, except Div, which fails when the divisor
// is zero.
package arith

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Div when the divisor is exactly zero.
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Sub returns the difference of a and b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns the product of a and b.
func Mul(a, b float64) float64 { return a * b }

// Div returns the quotient of a and b. It returns ErrDivisionByZero if b is
// exactly zero; the check is an exact comparison, not a tolerance.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Pow returns a raised to the power of b, following the conventions of
// math.Pow for special cases like Pow(0, 0).
func Pow(a, b float64) float64 { return math.Pow(a, b) }
