// Package verify runs data-driven checks of the discriminant theorems.
//
// A suite is a plain YAML document holding curated test vectors for
// three check families:
//
//   - discriminant: the exact discriminant of the quintic roots for
//     (N, p) equals 2^12 * p^6 * q^6 * (N-p)^4 * N^4 with q = 2N-p.
//   - valuation: ord_r(disc) = 4*ord_r(N) for a prime r not dividing
//     p(2N-p)(N-p). Vectors whose hypothesis fails are reported as
//     skipped, not failed.
//   - uniformity: for fixed (N, r) the valuation ord_r(disc) takes one
//     constant value, 4*ord_r(N), across every admissible odd prime p.
//
// # Suite Format
//
//	name: chen-theorems
//	description: "What this suite verifies"
//	discriminant:
//	  - {n: 15, p: 7}
//	valuation:
//	  - {n: 49, p: 3, r: 7}
//	uniformity:
//	  - {n: 15, r: 5}
//
// Unknown fields are rejected so a typo surfaces as a load error
// instead of a silently ignored vector.
//
// # Failure Is Data
//
// A mismatched identity never aborts a run and never becomes an error:
// it is recorded per case and folded into the suite Result, whose
// report marks the mismatch. Only unreadable or malformed suite files
// produce errors.
package verify
