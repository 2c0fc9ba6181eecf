package goldbach

// DistinctPrimeFactors returns the distinct prime factors of n in
// ascending order. Trial division walks the supplied prime sequence
// and stops once the candidate's square exceeds the remaining
// cofactor; repeated occurrences of a factor are stripped so each
// prime appears once. A cofactor above 1 left after the walk has no
// divisor up to its square root and is itself prime, so it is
// appended directly.
//
// n must be >= 1 and primes must cover sqrt(n).
func DistinctPrimeFactors(n int64, primes []int64) []int64 {
	var factors []int64
	rem := n
	for _, p := range primes {
		if p*p > rem {
			break
		}
		if rem%p != 0 {
			continue
		}
		factors = append(factors, p)
		for rem%p == 0 {
			rem /= p
		}
	}
	if rem > 1 {
		factors = append(factors, rem)
	}
	return factors
}
