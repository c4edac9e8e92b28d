// Package math includes important helpers for the state transition such
// as fast, overflow-checked integer arithmetic and integer square roots.
package math

import (
	"errors"
	"math/bits"

	"github.com/thomaso-mirodin/intmath/u64"
)

var (
	// ErrAddOverflow occurs when an addition exceeds the maximum uint64 value.
	ErrAddOverflow = errors.New("addition overflows")
	// ErrSubUnderflow occurs when a subtraction drops below zero.
	ErrSubUnderflow = errors.New("subtraction underflow")
	// ErrMulOverflow occurs when a multiplication exceeds the maximum uint64 value.
	ErrMulOverflow = errors.New("multiplication overflows")
	// ErrDivByZero occurs when a divisor is zero.
	ErrDivByZero = errors.New("integer divide by zero")
)

// IntegerSquareRoot defines a function that returns the
// largest possible integer root of a number.
func IntegerSquareRoot(n uint64) uint64 {
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// CeilDiv8 divides the input number by 8
// and takes the ceiling of that number.
func CeilDiv8(n int) int {
	ret := n / 8
	if n%8 > 0 {
		ret++
	}
	return ret
}

// IsPowerOf2 returns true if n is an
// exact power of two. False otherwise.
func IsPowerOf2(n uint64) bool {
	return n != 0 && (n&(n-1)) == 0
}

// PowerOf2 returns an integer that is the provided
// exponent of 2. Can only return powers of 2 till 63,
// after that it overflows.
func PowerOf2(n uint64) uint64 {
	if n >= 64 {
		panic("integer overflow")
	}
	return 1 << n
}

// Max returns the larger integer of the two given ones. This is used over
// the Max function in the standard math library because that max function
// has to check for some special flags and does not perform well for our
// use cases.
func Max(a, b uint64) uint64 {
	return u64.Max(a, b)
}

// Min returns the smaller integer of the two given ones.
func Min(a, b uint64) uint64 {
	return u64.Min(a, b)
}

// Add64 adds 2 64-bit unsigned integers and checks if they
// lead to an overflow. If they do not, it returns the result
// without an error.
func Add64(a, b uint64) (uint64, error) {
	res, carry := bits.Add64(a, b, 0 /* carry */)
	if carry > 0 {
		return 0, ErrAddOverflow
	}
	return res, nil
}

// Sub64 subtracts 2 64-bit unsigned integers and checks for errors.
func Sub64(a, b uint64) (uint64, error) {
	res, borrow := bits.Sub64(a, b, 0 /* borrow */)
	if borrow > 0 {
		return 0, ErrSubUnderflow
	}
	return res, nil
}

// Mul64 multiplies 2 64-bit unsigned integers and checks if they
// lead to an overflow. If they do not, it returns the result
// without an error.
func Mul64(a, b uint64) (uint64, error) {
	overflows, val := bits.Mul64(a, b)
	if overflows > 0 {
		return 0, ErrMulOverflow
	}
	return val, nil
}

// Div64 divides 2 64-bit unsigned integers and checks for errors.
func Div64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a / b, nil
}

// Mod64 finds the remainder of 2 64-bit unsigned integers and checks for errors.
func Mod64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a % b, nil
}
