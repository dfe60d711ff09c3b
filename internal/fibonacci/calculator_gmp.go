//go:build gmp

// This file provides a GMP-backed iterative calculator, conditionally compiled
// with the "gmp" build tag. The build tag architecture ensures that:
//   - The toolkit builds without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp

package fibonacci

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterCalculator("gmp", func() coreCalculator { return &GMPIterative{} })
}

// GMPIterative implements the iterative Fibonacci calculation on top of the
// GMP library. It requires the 'gmp' build tag and libgmp on the system.
// Semantics are identical to Iterative; the difference is that the big-number
// additions run through GMP's assembly-optimized routines, which matters only
// for very large indices.
type GMPIterative struct{}

// Name returns the descriptive name of the algorithm.
func (c *GMPIterative) Name() string {
	return "GMP Iterative (O(n), libgmp arithmetic)"
}

// Exact reports that this algorithm produces exact integer results.
func (c *GMPIterative) Exact() bool { return true }

// CalculateCore computes F(n) iteratively using gmp.Int arithmetic and
// converts the result back to a standard library big.Int.
func (c *GMPIterative) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	if n <= 1 {
		return big.NewInt(int64(n)), nil
	}

	a := gmp.NewInt(0)
	b := gmp.NewInt(1)
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
	return new(big.Int).SetBytes(b.Bytes()), nil
}
