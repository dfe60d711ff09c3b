package pi

import (
	"context"
)

// Lattice estimates π by exhaustive counting: of the (n+1)² integer points
// (x, y) with 0 ≤ x, y ≤ n, those satisfying x² + y² ≤ n² lie inside the
// quarter disk of radius n, so
//
//	π ≈ 4 · count / (n+1)²
//
// O(n²) time, O(1) space, fully deterministic: the same n always produces the
// same estimate. Precision improves as the grid is refined, but the quadratic
// cost grows much faster than the accuracy, which is exactly the trade-off
// this baseline is meant to demonstrate.
type Lattice struct{}

// Name returns the descriptive name of the method.
func (l *Lattice) Name() string {
	return "Lattice counting (deterministic, O(n²))"
}

// Deterministic reports that equal inputs produce equal estimates.
func (l *Lattice) Deterministic() bool { return true }

// EstimateCore counts the lattice points row by row. Cancellation is polled
// once per row: each row is O(n) cheap integer work, so finer-grained checks
// would only add overhead.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The grid radius; the estimate uses the (n+1)×(n+1) corner grid.
//
// Returns:
//   - float64: The π estimate 4·count/(n+1)².
//   - error: An InvalidArgumentError when n is negative, or a context error.
func (l *Lattice) EstimateCore(ctx context.Context, reporter ProgressReporter, n int) (float64, error) {
	if err := checkCount(n); err != nil {
		return 0, err
	}

	rSquared := int64(n) * int64(n)
	var count int64
	for x := 0; x <= n; x++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		xSquared := int64(x) * int64(x)
		for y := 0; y <= n; y++ {
			if xSquared+int64(y)*int64(y) <= rSquared {
				count++
			}
		}
		reporter(float64(x+1) / float64(n+1))
	}

	side := int64(n) + 1
	return 4 * float64(count) / float64(side*side), nil
}
