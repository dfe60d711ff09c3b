package fibonacci

import (
	"context"
	"math/big"
)

// Sequence computes the full prefix F(0)..F(n) with a dynamic-programming
// table. Same O(n) time as Iterative but O(n) space, useful when the caller
// needs the whole sequence rather than a single value.
type Sequence struct{}

// Name returns the descriptive name of the algorithm.
func (s *Sequence) Name() string {
	return "Sequence DP (O(n) time and space)"
}

// Exact reports that this algorithm produces exact integer results.
func (s *Sequence) Exact() bool { return true }

// Values builds and returns the Fibonacci sequence of length n+1, where index
// i holds F(i). Each entry is an independent big.Int; mutating one does not
// affect its neighbours.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The largest index of the sequence to build.
//
// Returns:
//   - []*big.Int: The sequence F(0)..F(n), length n+1.
//   - error: An error if one occurred.
func (s *Sequence) Values(ctx context.Context, reporter ProgressReporter, n int) ([]*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}

	seq := make([]*big.Int, n+1)
	seq[0] = big.NewInt(0)
	if n >= 1 {
		seq[1] = big.NewInt(1)
	}
	for i := 2; i <= n; i++ {
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
		if i%iterativeCheckpoint == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			reporter(float64(i) / float64(n))
		}
	}
	return seq, nil
}

// CalculateCore computes F(n) by building the full table and returning its
// last entry. The table is discarded afterwards; callers that want the whole
// prefix should use Values directly.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred.
func (s *Sequence) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	seq, err := s.Values(ctx, reporter, n)
	if err != nil {
		return nil, err
	}
	return seq[n], nil
}
