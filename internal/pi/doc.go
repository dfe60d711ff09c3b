// Package pi provides two estimators for the constant π, both based on the
// observation that a quarter disk of radius r inscribed in an r×r square
// covers π/4 of its area.
//
// The lattice estimator counts integer grid points inside the quarter disk:
// deterministic, O(n²), converging slowly as the grid is refined. The Monte
// Carlo estimator samples uniform random points in the unit square: O(n), a
// statistical estimate whose variance shrinks as the sample count grows, and
// deterministic only when given a seeded random source.
//
// Both share the Fibonacci package's contract shape: a signed count n, an
// InvalidArgumentError for invalid n, and an Estimator interface that the
// driver uses to treat the strategies interchangeably.
package pi
