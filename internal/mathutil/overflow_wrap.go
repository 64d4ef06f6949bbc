//go:build release

package mathutil

// Checked is false in release builds: arithmetic wraps modulo 2^64.
const Checked = false

func add(a, b uint64) uint64 {
	return a + b
}

func mul(a, b uint64) uint64 {
	return a * b
}
