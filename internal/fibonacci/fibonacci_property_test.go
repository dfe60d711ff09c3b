package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propertyMaxIndex = 2000

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity for the
// Fibonacci sequence using property-based testing.
// Cassini's Identity states that for any integer n > 0:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
//
// This property provides a powerful correctness check that catches a wide
// class of arithmetic errors with randomly sampled indices.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, calculator := range exactCalculators() {
		properties.Property(calculator.Name()+" satisfies Cassini's Identity", prop.ForAll(
			func(n int) bool {
				fnMinus1, err := calcF(calculator, n-1)
				if err != nil {
					t.Logf("Error calculating F(%d-1): %v", n, err)
					return false
				}
				fn, err := calcF(calculator, n)
				if err != nil {
					t.Logf("Error calculating F(%d): %v", n, err)
					return false
				}
				fnPlus1, err := calcF(calculator, n+1)
				if err != nil {
					t.Logf("Error calculating F(%d+1): %v", n, err)
					return false
				}

				// Left side: F(n-1) * F(n+1) - F(n)²
				leftSide := new(big.Int)
				fnSquared := new(big.Int).Mul(fn, fn)
				leftSide.Mul(fnMinus1, fnPlus1).Sub(leftSide, fnSquared)

				// Right side: (-1)ⁿ
				rightSide := big.NewInt(1)
				if n%2 != 0 {
					rightSide.Neg(rightSide)
				}

				return leftSide.Cmp(rightSide) == 0
			},
			gen.IntRange(1, propertyMaxIndex),
		))
	}

	properties.TestingRun(t)
}

// TestRecurrenceRelation_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 2
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, calculator := range exactCalculators() {
		properties.Property(calculator.Name()+" satisfies the recurrence", prop.ForAll(
			func(n int) bool {
				fn, err := calcF(calculator, n)
				if err != nil {
					return false
				}
				fnMinus1, err := calcF(calculator, n-1)
				if err != nil {
					return false
				}
				fnMinus2, err := calcF(calculator, n-2)
				if err != nil {
					return false
				}
				sum := new(big.Int).Add(fnMinus1, fnMinus2)
				return fn.Cmp(sum) == 0
			},
			gen.IntRange(2, propertyMaxIndex),
		))
	}

	properties.TestingRun(t)
}

// TestDoublingIdentity_PropertyBased verifies F(2n) = F(n) * (2*F(n+1) - F(n)),
// the identity underlying the matrix fast-doubling implementation, against the
// plain iterative calculator.
func TestDoublingIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	iterative := &Iterative{}
	matrix := &MatrixPower{}

	properties.Property("F(2n) matches the doubling identity", prop.ForAll(
		func(n int) bool {
			fn, err := calcF(iterative, n)
			if err != nil {
				return false
			}
			fnPlus1, err := calcF(iterative, n+1)
			if err != nil {
				return false
			}
			f2n, err := calcF(matrix, 2*n)
			if err != nil {
				return false
			}

			// F(2n) = F(n) * (2*F(n+1) - F(n))
			expected := new(big.Int).Lsh(fnPlus1, 1)
			expected.Sub(expected, fn).Mul(expected, fn)
			return f2n.Cmp(expected) == 0
		},
		gen.IntRange(0, propertyMaxIndex),
	))

	properties.TestingRun(t)
}
