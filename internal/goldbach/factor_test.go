package goldbach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/goldbach/internal/sieve"
)

func TestDistinctPrimeFactors(t *testing.T) {
	table, err := sieve.New(100)
	require.NoError(t, err)
	primes := table.Primes()

	tests := []struct {
		n    int64
		want []int64
	}{
		{1, nil},
		{2, []int64{2}},
		{12, []int64{2, 3}},
		{15, []int64{3, 5}},
		{49, []int64{7}},         // square stripped to one entry
		{72, []int64{2, 3}},      // 2^3 * 3^2, multiplicities collapse
		{50, []int64{2, 5}},
		{97, []int64{97}},        // prime survives as the large cofactor
		{202, []int64{2, 101}},   // cofactor above sqrt folded in directly
		{3 * 5 * 7, []int64{3, 5, 7}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DistinctPrimeFactors(tt.n, primes), "n=%d", tt.n)
	}
}

func TestDistinctPrimeFactors_Ascending(t *testing.T) {
	table, err := sieve.New(1000)
	require.NoError(t, err)
	primes := table.Primes()

	for n := int64(2); n <= 1000; n++ {
		factors := DistinctPrimeFactors(n, primes)
		require.NotEmpty(t, factors, "n=%d", n)
		rebuilt := int64(1)
		for i, p := range factors {
			if i > 0 {
				assert.Greater(t, p, factors[i-1], "n=%d", n)
			}
			assert.Zero(t, n%p, "n=%d factor=%d", n, p)
			rebuilt *= p
		}
		// The product of distinct factors divides n.
		assert.Zero(t, n%rebuilt, "n=%d", n)
	}
}
