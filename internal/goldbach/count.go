package goldbach

import "github.com/roach88/goldbach/internal/sieve"

// CountOrdered counts ordered Goldbach representations of the even
// integer n: primes p with 2 <= p < n such that n-p is also prime.
// Both (p, n-p) and (n-p, p) are counted when p != n-p; the self-pair
// p = n/2 contributes exactly once. The loop exits as soon as p >= n
// since larger primes cannot contribute.
//
// n must be even, >= 4, and no larger than the limit the table was
// built for.
func CountOrdered(n int64, table *sieve.Table, primes []int64) int64 {
	var count int64
	for _, p := range primes {
		if p >= n {
			break
		}
		if table.IsPrime(n - p) {
			count++
		}
	}
	return count
}
