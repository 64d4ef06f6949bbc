//go:build release

package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecked(t *testing.T) {
	assert.False(t, Checked)
}

func TestFactorial_OverflowWraps(t *testing.T) {
	// 21! mod 2^64
	assert.Equal(t, uint64(14197454024290336768), Factorial(MaxFactorialInput+1))
}

func TestAdd_OverflowWraps(t *testing.T) {
	assert.Equal(t, uint64(0), Add(math.MaxUint64, 1))
}
