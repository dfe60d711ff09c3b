// Package fibonacci provides seven implementations for computing Fibonacci
// numbers, each with a different algorithmic trade-off: naive recursion,
// iteration, full-sequence dynamic programming, process-wide memoization,
// matrix-power fast doubling, and the two Binet closed-form approximations.
//
// All variants share the same contract: a signed index n, an
// InvalidArgumentError for n < 0, and a *big.Int result. The exact variants
// (everything except the Binet pair) agree bit-for-bit for every index since
// they compute the same integer sequence with arbitrary-precision arithmetic;
// the Binet pair trades exactness for closed-form evaluation and is accurate
// only while float64 rounding does not corrupt the integer result.
//
// The package exposes a Calculator interface that abstracts the underlying
// algorithm, allowing the different strategies to be used interchangeably and
// compared against each other by the orchestration layer.
package fibonacci
