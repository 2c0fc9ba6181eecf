package goldbach

// SingularSeries computes the Hardy-Littlewood local correction for
// the even target n: the product of (p-1)/(p-2) over the distinct odd
// primes p dividing N = n/2. The 2-part of N never enters the product,
// so every denominator is at least 1 and the result is at least 1.
// When N is a power of two the product is empty and the result is
// exactly 1.
func SingularSeries(n int64, primes []int64) float64 {
	factor := 1.0
	for _, p := range DistinctPrimeFactors(n/2, primes) {
		if p == 2 {
			continue
		}
		factor *= float64(p-1) / float64(p-2)
	}
	return factor
}
