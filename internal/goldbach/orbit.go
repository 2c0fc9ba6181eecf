package goldbach

// Orbit labels the residue class of an integer under divisibility by
// 2 and 3. The classes separate the visible bands of the Goldbach
// comet: targets whose half is divisible by 3 sit on the upper band.
type Orbit string

// Orbit classes, in band order.
const (
	OrbitDivBy6     Orbit = "div-by-6"
	OrbitDivBy3Not6 Orbit = "div-by-3-not-6"
	OrbitOther      Orbit = "other"
)

// ClassifyOrbit classifies a positive integer by divisibility. It is
// total: every positive n falls in exactly one class. Note that for
// even n the middle class is unreachable (an even multiple of 3 is a
// multiple of 6); it exists for the general contract.
func ClassifyOrbit(n int64) Orbit {
	switch {
	case n%6 == 0:
		return OrbitDivBy6
	case n%3 == 0:
		return OrbitDivBy3Not6
	default:
		return OrbitOther
	}
}
