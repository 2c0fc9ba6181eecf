package algebra

import (
	"fmt"
	"math/big"
)

// Valuation is the result of a p-adic valuation. The valuation of zero
// is infinite by convention; when Infinite is set, V carries no
// meaning and any finite comparison must fail.
type Valuation struct {
	V        int64
	Infinite bool
}

// Finite reports whether the valuation is an ordinary non-negative
// integer.
func (v Valuation) Finite() bool {
	return !v.Infinite
}

func (v Valuation) String() string {
	if v.Infinite {
		return "inf"
	}
	return fmt.Sprintf("%d", v.V)
}

// Ord computes the p-adic valuation of z: how many times the prime p
// divides z. Ord of zero is the infinite valuation. A p below 2 is an
// impossible precondition and panics.
func Ord(z *big.Int, p int64) Valuation {
	if p < 2 {
		panic(fmt.Sprintf("algebra: Ord requires prime >= 2, got %d", p))
	}
	if z.Sign() == 0 {
		return Valuation{Infinite: true}
	}
	n := new(big.Int).Set(z)
	div := big.NewInt(p)
	quo := new(big.Int)
	rem := new(big.Int)
	var v int64
	for {
		quo.QuoRem(n, div, rem)
		if rem.Sign() != 0 {
			break
		}
		n.Set(quo)
		v++
	}
	return Valuation{V: v}
}

// OrdInt64 is Ord for machine-sized integers.
func OrdInt64(n, p int64) Valuation {
	return Ord(big.NewInt(n), p)
}
