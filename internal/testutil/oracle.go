// Package testutil provides slow reference implementations used to
// cross-check the fast arithmetic in tests.
package testutil

// IsPrimeSlow reports primality by plain trial division. It is the
// oracle the sieve is checked against.
func IsPrimeSlow(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// CountOrderedSlow counts ordered Goldbach representations of n by
// scanning every integer in [2, n) with trial-division primality.
func CountOrderedSlow(n int64) int64 {
	var count int64
	for p := int64(2); p < n; p++ {
		if IsPrimeSlow(p) && IsPrimeSlow(n-p) {
			count++
		}
	}
	return count
}
