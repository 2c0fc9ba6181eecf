package goldbach

import "math"

// Predict evaluates the ordered-pair Hardy-Littlewood asymptotic
//
//	2 * c2 * series * n / (ln n)^2
//
// for the even target n, where c2 is the twin prime constant and
// series the singular series value from SingularSeries. The constant
// is caller-supplied configuration, not package state. n must be
// greater than 1.
func Predict(n int64, c2, series float64) float64 {
	logN := math.Log(float64(n))
	return 2 * c2 * series * float64(n) / (logN * logN)
}
