// Package goldbach computes ordered Goldbach representation counts and
// the Hardy-Littlewood asymptotic they are compared against.
//
// # Counting Convention
//
// Every function in this package uses the ORDERED pair convention:
// (p, q) and (q, p) are distinct representations of p+q unless p = q.
// The predictor's leading factor of 2 converts the canonical unordered
// Hardy-Littlewood asymptotic to the same convention. The two must
// move together: an ordered/unordered mismatch does not show up as
// noise but as a constant multiplicative bias in every ratio.
//
// # Singular Series
//
// The local correction ("conduit factor") for an even target 2N is
//
//	∏ (p-1)/(p-2) over the distinct odd primes p dividing N.
//
// Each prime contributes once regardless of multiplicity, and a target
// whose half is a power of two has an empty product, exactly 1.
package goldbach
