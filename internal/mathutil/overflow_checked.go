//go:build !release

package mathutil

import (
	"fmt"
	"math/bits"
)

// Checked is true when overflowing arithmetic panics instead of wrapping.
const Checked = true

func add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		panic(fmt.Errorf("%w: %d + %d", ErrOverflow, a, b))
	}
	return sum
}

func mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(fmt.Errorf("%w: %d * %d", ErrOverflow, a, b))
	}
	return lo
}
