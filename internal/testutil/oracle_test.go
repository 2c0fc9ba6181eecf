package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrimeSlow(t *testing.T) {
	primes := map[int64]bool{2: true, 3: true, 5: true, 7: true, 97: true, 101: true}
	composites := []int64{-7, 0, 1, 4, 9, 15, 49, 100}

	for p := range primes {
		assert.True(t, IsPrimeSlow(p), "p=%d", p)
	}
	for _, c := range composites {
		assert.False(t, IsPrimeSlow(c), "c=%d", c)
	}
}

func TestCountOrderedSlow(t *testing.T) {
	assert.Equal(t, int64(1), CountOrderedSlow(4))
	assert.Equal(t, int64(1), CountOrderedSlow(6))
	assert.Equal(t, int64(2), CountOrderedSlow(8))
	assert.Equal(t, int64(3), CountOrderedSlow(10))
}
