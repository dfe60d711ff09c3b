package fibonacci

import (
	"context"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/numlab/internal/errors"
)

const (
	// DefaultRecursionLimit caps the index accepted by the naive recursive
	// algorithm. The call tree has roughly φⁿ nodes, so F(40) already costs
	// about 300 million calls; beyond that the exponential baseline stops
	// being a demonstration and starts being a denial of service. The limit
	// can be raised per instance for benchmarking.
	DefaultRecursionLimit = 40

	// recursivePollFloor is the subtree size above which the recursion polls
	// the context. Polling on every call would dominate the cost of the tiny
	// base cases.
	recursivePollFloor = 16
)

// Recursive computes F(n) by direct application of the recurrence
// F(n) = F(n-1) + F(n-2). Exponential time, O(n) stack depth. This is the
// intentionally bad baseline the other algorithms are measured against.
type Recursive struct {
	// Limit overrides DefaultRecursionLimit when positive.
	Limit int
}

// Name returns the descriptive name of the algorithm.
func (r *Recursive) Name() string {
	return "Recursive (O(2^n), exponential baseline)"
}

// Exact reports that this algorithm produces exact integer results.
func (r *Recursive) Exact() bool { return true }

// CalculateCore computes F(n) recursively.
// Indices above the recursion limit are rejected up front: the exponential
// cost would be unbounded and the O(n) stack depth risks exhaustion.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred.
func (r *Recursive) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultRecursionLimit
	}
	if n > limit {
		return nil, apperrors.NewInvalidArgument("n", int64(n),
			fmt.Sprintf("exceeds the recursion limit %d of the exponential algorithm", limit))
	}
	result, err := fibRecurse(ctx, n)
	if err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}

// fibRecurse is the textbook doubly-recursive evaluation. Cancellation is
// polled only on subtrees large enough to amortize the context check.
func fibRecurse(ctx context.Context, n int) (*big.Int, error) {
	if n >= recursivePollFloor {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if n <= 1 {
		return big.NewInt(int64(n)), nil
	}
	a, err := fibRecurse(ctx, n-1)
	if err != nil {
		return nil, err
	}
	b, err := fibRecurse(ctx, n-2)
	if err != nil {
		return nil, err
	}
	return a.Add(a, b), nil
}
