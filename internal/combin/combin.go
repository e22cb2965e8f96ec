// Package combin provides the binomial and multiset coefficients used by
// the position database hash. It delegates to gonum's combinatorics
// package rather than hand-rolling Pascal's triangle.
package combin

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Binomial returns C(n, k), the number of ways to choose k items from n
// without regard to order. Returns 0 for k > n or n < 0, matching the
// degenerate cases the dbhash formula relies on.
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return int(math.Round(combin.Binomial(n, k)))
}

// Multiset returns the number of k-element multisets drawn from n distinct
// kinds of items, i.e. C(n+k-1, k). This is the coefficient the database
// hash uses to index a run of identical checkers across the remaining pips.
func Multiset(n, k int) int {
	if n < 0 || k < 0 {
		return 0
	}
	return Binomial(n+k-1, k)
}
