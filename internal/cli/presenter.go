package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/ui"
)

// CLIProgressReporter displays calculation progress on the terminal using a
// spinner and an aggregated progress bar. It implements
// orchestration.ProgressReporter.
type CLIProgressReporter struct{}

// DisplayProgress delegates to the package-level spinner renderer.
func (r *CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIColorProvider supplies the theme-backed ANSI fragments used by the error
// reporting helpers. It implements apperrors.ColorProvider.
type CLIColorProvider struct{}

// Red returns the ANSI sequence for error text.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the ANSI sequence for warning text.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the ANSI reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter renders calculation results as terminal text. It
// implements orchestration.ResultPresenter.
type CLIResultPresenter struct{}

// padRight pads s with spaces to the given display width. Width is counted in
// runes so that box-drawing and accented characters align correctly.
func padRight(s string, width int) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return s
	}
	return s + strings.Repeat(" ", width-length)
}

// PresentComparisonTable writes the algorithm comparison table to out.
// Results are expected pre-sorted (successes first, fastest first).
func (p *CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	const (
		nameWidth     = 14
		durationWidth = 14
		statusWidth   = 28
	)

	fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorBold(), "Algorithm comparison", ui.ColorReset())
	fmt.Fprintf(out, "%s %s %s\n",
		padRight("ALGORITHM", nameWidth),
		padRight("DURATION", durationWidth),
		padRight("STATUS", statusWidth))
	fmt.Fprintln(out, strings.Repeat("-", nameWidth+durationWidth+statusWidth+2))

	for _, res := range results {
		status := fmt.Sprintf("%sOK%s", ui.ColorGreen(), ui.ColorReset())
		duration := FormatExecutionDuration(res.Duration)
		if res.Err != nil {
			status = fmt.Sprintf("%sFAILED: %v%s", ui.ColorRed(), res.Err, ui.ColorReset())
			duration = "-"
		} else if !res.Exact {
			status = fmt.Sprintf("%sOK (approximate)%s", ui.ColorYellow(), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s %s %s\n",
			padRight(res.Name, nameWidth),
			padRight(duration, durationWidth),
			status)
	}
	fmt.Fprintln(out)
}

// PresentResult writes a single calculation result to out.
func (p *CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(out, opts.N, result.Result, result.Duration, opts.Verbose, opts.ShowValue)
}

// HandleError reports a calculation error and returns the process exit code.
func (p *CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}
