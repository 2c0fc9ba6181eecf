// Package algebra provides the exact integer arithmetic behind the
// quintic discriminant identities: root-set construction, the
// discriminant as a product of squared differences, its closed-form
// factorization, and p-adic valuations.
package algebra

import "math/big"

// QuinticRoots builds the root set {0, p, -p, q, -q} with q = 2N - p,
// the roots of the quintic x(x^2-p^2)(x^2-q^2) attached to the
// Goldbach decomposition 2N = p + q. p must lie strictly between 0 and
// 2N or two roots coincide and the discriminant degenerates to zero.
func QuinticRoots(n, p int64) []int64 {
	q := 2*n - p
	return []int64{0, p, -p, q, -q}
}

// Discriminant computes the product over all unordered pairs i < j of
// (roots[i]-roots[j])^2. Intermediate magnitudes reach the 12th power
// of the roots for the quintic case, far past int64, so everything
// stays in math/big. The result is zero exactly when two roots
// coincide, and 1 for fewer than two roots (empty product).
func Discriminant(roots []int64) *big.Int {
	disc := big.NewInt(1)
	diff := new(big.Int)
	for i := 0; i < len(roots); i++ {
		for j := i + 1; j < len(roots); j++ {
			diff.SetInt64(roots[i] - roots[j])
			diff.Mul(diff, diff)
			disc.Mul(disc, diff)
		}
	}
	return disc
}

// DiscriminantFormula evaluates the closed form
//
//	2^12 * p^6 * q^6 * (N-p)^4 * N^4,  q = 2N - p,
//
// which the discriminant of QuinticRoots(n, p) must equal exactly.
func DiscriminantFormula(n, p int64) *big.Int {
	q := 2*n - p
	out := new(big.Int).Lsh(big.NewInt(1), 12)
	out.Mul(out, pow(p, 6))
	out.Mul(out, pow(q, 6))
	out.Mul(out, pow(n-p, 4))
	out.Mul(out, pow(n, 4))
	return out
}

func pow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}
