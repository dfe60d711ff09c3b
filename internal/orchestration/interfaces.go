package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/numlab/internal/fibonacci"
)

// PresentationOptions bundles the output settings passed from the
// configuration to the presenter.
type PresentationOptions struct {
	// N is the index that was calculated.
	N int
	// Verbose shows the full result value without truncation.
	Verbose bool
	// ShowValue enables the calculated value section.
	ShowValue bool
}

// ProgressReporter consumes progress updates produced by running calculators
// and renders them somewhere (spinner, TUI, nowhere).
type ProgressReporter interface {
	// DisplayProgress drains progressChan until it is closed, rendering
	// updates to out. Implementations must call wg.Done() on return.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)
}

// NullProgressReporter discards all progress updates. Used in quiet mode and
// in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without rendering anything.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders calculation outcomes. The CLI and the TUI provide
// their own implementations.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-algorithm summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the final (best) result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
	// HandleError reports a calculation error and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
