package fibonacci

import (
	"context"
	"math"
	"math/big"

	apperrors "github.com/agbru/numlab/internal/errors"
)

// BinetExactLimit is the largest index for which the float64 evaluation of
// Binet's formula is known to reproduce the exact Fibonacci number. Beyond
// it, the 53-bit mantissa can no longer carry the integer result and the
// returned value drifts from the true sequence. This is a documented accuracy
// limitation of the closed form, not an error: callers needing exact values
// at large indices must use one of the integer algorithms.
const BinetExactLimit = 70

// Binet computes F(n) from the closed form
//
//	F(n) = (φⁿ − ψⁿ) / √5
//
// with φ = (1+√5)/2 the golden ratio and ψ = (1−√5)/2 its conjugate. The
// evaluation is O(log n) via the platform pow, with O(1) space, but it runs
// entirely in float64: results are exact only up to BinetExactLimit and the
// computation fails with a RangeError once φⁿ overflows the float64 range
// (around n = 1474).
type Binet struct{}

// Name returns the descriptive name of the algorithm.
func (b *Binet) Name() string {
	return "Binet closed form (float64, approximate)"
}

// Exact reports that this algorithm is approximate beyond small indices.
func (b *Binet) Exact() bool { return false }

// CalculateCore evaluates the two-term Binet formula.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to approximate.
//
// Returns:
//   - *big.Int: The rounded closed-form value.
//   - error: An InvalidArgumentError for negative n, or a RangeError when the
//     result exceeds the float64 range.
func (b *Binet) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sqrt5 := math.Sqrt(5)
	phi := (1 + sqrt5) / 2
	psi := (1 - sqrt5) / 2
	v := (math.Pow(phi, float64(n)) - math.Pow(psi, float64(n))) / sqrt5
	result, err := binetRound(v, "binet", n)
	if err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}

// BinetApprox computes F(n) from the single-term approximation
//
//	F(n) ≈ round(φⁿ / √5)
//
// dropping the vanishing ψⁿ term entirely. Valid because |ψ| < 1, so ψⁿ
// decays geometrically and the dropped term never moves the rounded result.
// Marginally cheaper than the two-term form, with the same precision ceiling.
type BinetApprox struct{}

// Name returns the descriptive name of the algorithm.
func (b *BinetApprox) Name() string {
	return "Binet single-term (float64, approximate)"
}

// Exact reports that this algorithm is approximate beyond small indices.
func (b *BinetApprox) Exact() bool { return false }

// CalculateCore evaluates the single-term Binet approximation.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - reporter: The function used for reporting progress.
//   - n: The index of the Fibonacci number to approximate.
//
// Returns:
//   - *big.Int: The rounded closed-form value.
//   - error: An InvalidArgumentError for negative n, or a RangeError when the
//     result exceeds the float64 range.
func (b *BinetApprox) CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error) {
	if err := checkIndex(n); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sqrt5 := math.Sqrt(5)
	phi := (1 + sqrt5) / 2
	v := math.Pow(phi, float64(n)) / sqrt5
	result, err := binetRound(v, "binet-approx", n)
	if err != nil {
		return nil, err
	}
	reporter(1.0)
	return result, nil
}

// binetRound converts a float64 closed-form value to the nearest integer.
// Overflow to ±Inf is reported as a RangeError: the input index was valid,
// the arithmetic just cannot represent the result.
func binetRound(v float64, op string, n int) (*big.Int, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, apperrors.RangeError{Op: op, N: int64(n)}
	}
	// Rounding happens in float64; converting through big.Float preserves the
	// full magnitude for indices past the int64 range (n ≥ 93).
	f := new(big.Float).SetFloat64(math.Round(v))
	z, _ := f.Int(nil)
	return z, nil
}
