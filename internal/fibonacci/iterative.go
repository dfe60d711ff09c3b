package fibonacci

import (
	"context"
	"math/big"
)

// iterativeCheckpoint is the iteration stride between context polls and
// progress reports in the linear algorithms. Checking on every addition would
// cost more than the addition itself for small operands.
const iterativeCheckpoint = 1024

// Iterative computes F(n) with two running values, advancing n-1 times.
// O(n) time, O(1) space, no memory across calls. This is the workhorse for
// moderate indices and the reference against which the fancier algorithms
// are validated.
type Iterative struct{}

// Name returns the descriptive name of the algorithm.
func (it *Iterative) Name() string {
	return "Iterative (O(n) time, O(1) space)"
}

// Exact reports that this algorithm produces exact integer results.
func (it *Iterative) Exact() bool { return true }

// CalculateCore computes F(n) iteratively.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred (e.g., context cancellation).
func (it *Iterative) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return big.NewInt(int64(n)), nil
	}

	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
		if i%iterativeCheckpoint == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			reporter(float64(i) / float64(n))
		}
	}
	return b, nil
}
