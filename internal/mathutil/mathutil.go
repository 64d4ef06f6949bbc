// Package mathutil provides small arithmetic helpers over unsigned 64-bit
// integers: addition, factorial, greatest common divisor and a trial
// division primality test.
//
// Overflow is not reported as an error. In the default (checked) build an
// overflowing Add or Factorial panics with a value wrapping ErrOverflow; a
// build with the "release" tag wraps modulo 2^64 instead.
package mathutil

import "errors"

// MaxFactorialInput is the largest n for which Factorial(n) fits in a uint64.
const MaxFactorialInput = 20

// ErrOverflow is wrapped by the panic value raised by checked arithmetic.
var ErrOverflow = errors.New("arithmetic overflow")

// Add returns a + b.
func Add(a, b uint64) uint64 {
	return add(a, b)
}

// Factorial returns the product 1 * 2 * ... * n, with Factorial(0) == 1.
//
// The result overflows for n > MaxFactorialInput.
func Factorial(n uint64) uint64 {
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		result = mul(result, i)
	}
	return result
}

// GCD computes the greatest common divisor of a and b using the Euclidean
// algorithm. GCD(0, n) and GCD(n, 0) are both n.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	// i <= n/i is i*i <= n without the overflow
	for i := uint64(2); i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
