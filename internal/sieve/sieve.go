// Package sieve implements the classical Sieve of Eratosthenes.
//
// A Table is built once per analysis run and is immutable afterwards,
// so it may be shared freely between readers.
package sieve

import "fmt"

// Table is an immutable primality table over the integers 0..Limit().
type Table struct {
	isPrime []bool
}

// New builds a primality table for 0..limit. Composites are struck by
// walking multiples of each discovered prime starting at its square,
// giving O(limit log log limit) time and O(limit) space.
//
// A limit below 2 yields a table with no primes. A limit below 1 is a
// contract violation and returns an error.
func New(limit int64) (*Table, error) {
	if limit < 1 {
		return nil, fmt.Errorf("sieve: limit must be >= 1, got %d", limit)
	}
	isPrime := make([]bool, limit+1)
	for i := int64(2); i <= limit; i++ {
		isPrime[i] = true
	}
	for i := int64(2); i*i <= limit; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}
	return &Table{isPrime: isPrime}, nil
}

// Limit returns the largest value the table covers.
func (t *Table) Limit() int64 {
	return int64(len(t.isPrime)) - 1
}

// IsPrime reports whether n is prime. Values outside [0, Limit()] are
// never prime as far as this table is concerned.
func (t *Table) IsPrime(n int64) bool {
	if n < 0 || n >= int64(len(t.isPrime)) {
		return false
	}
	return t.isPrime[n]
}

// Primes returns the strictly increasing sequence of primes in the
// table.
func (t *Table) Primes() []int64 {
	var primes []int64
	for i, ok := range t.isPrime {
		if ok {
			primes = append(primes, int64(i))
		}
	}
	return primes
}
