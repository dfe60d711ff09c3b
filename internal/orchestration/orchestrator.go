package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
)

// CalculationResult encapsulates the outcome of a single Fibonacci
// calculation. It serves as a standardized container for results from
// different algorithms, facilitating comparison and reporting.
type CalculationResult struct {
	// Name is the identifier of the algorithm used.
	Name string
	// Result is the computed Fibonacci number. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the calculation.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
	// Exact records whether the algorithm guarantees exact integer results.
	// Approximate results are excluded from the cross-algorithm consistency
	// check.
	Exact bool
}

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropped updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 5

// ExecuteCalculations orchestrates the concurrent execution of one or more
// Fibonacci calculations.
//
// It manages the lifecycle of calculation goroutines, collects their results,
// and coordinates the display of progress updates.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: A slice of calculators to execute.
//   - n: The Fibonacci index to calculate.
//   - progressReporter: The progress reporter for displaying updates
//     (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: A slice containing the results of each calculation,
//     in calculator order.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n int, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		idx, calculator := i, calc
		g.Go(func() error {
			startTime := time.Now()
			res, err := calculator.Calculate(ctx, progressChan, idx, n)
			results[idx] = CalculationResult{
				Name:     calculator.Name(),
				Result:   res,
				Duration: time.Since(startTime),
				Err:      err,
				Exact:    calculator.Exact(),
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across the
// successful exact calculations, and displays a comparative table. Approximate
// (Binet) results appear in the table but never trigger a mismatch: their
// divergence at large indices is documented behavior.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - opts: The presentation options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstExactResult *CalculationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if results[i].Exact && firstExactResult == nil {
			firstExactResult = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the calculation.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	if firstExactResult != nil {
		for _, res := range results {
			if res.Err == nil && res.Exact && res.Result.Cmp(firstExactResult.Result) != 0 {
				fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the exact algorithms.\n")
				return apperrors.ExitErrorMismatch
			}
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All exact results are consistent.\n")
	best := firstExactResult
	if best == nil {
		// Only approximate algorithms ran; present the fastest of them.
		best = &results[0]
	}
	presenter.PresentResult(*best, opts, out)
	return apperrors.ExitSuccess
}
