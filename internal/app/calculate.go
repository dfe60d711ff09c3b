package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/numlab/internal/cli"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/logging"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/ui"
)

// runCalculate orchestrates the execution of the Fibonacci CLI command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = &cli.CLIProgressReporter{}
	}

	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, a.Config.N, progressReporter, progressOut)

	return a.analyzeResultsWithOutput(results, out)
}

// runPi executes a single π estimation with the configured method.
func (a *Application) runPi(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	estimator, err := a.Registry.Get(a.Config.PiMethod)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Estimating π with the %s%s%s method (n=%s%d%s).\n",
			ui.ColorGreen(), estimator.Name(), ui.ColorReset(),
			ui.ColorCyan(), a.Config.Samples, ui.ColorReset())
	}

	start := time.Now()
	estimate, err := estimator.Estimate(ctx, a.Config.Samples)
	duration := time.Since(start)

	if err != nil {
		return apperrors.HandleCalculationError(err, duration, out, cli.CLIColorProvider{})
	}

	if a.Config.Quiet {
		fmt.Fprintf(out, "%.10f\n", estimate)
	} else {
		cli.DisplayPiResult(out, estimator.Name(), a.Config.Samples, estimate, duration, a.Config.Verbose)
	}
	return apperrors.ExitSuccess
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, out io.Writer) int {
	bestResult := findBestResult(results)

	// Quiet mode prints only the winning value.
	if a.Config.Quiet && bestResult != nil {
		cli.DisplayQuietResult(out, bestResult.Result)
		if err := a.saveResultIfNeeded(bestResult); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	presOpts := orchestration.PresentationOptions{
		N:         a.Config.N,
		Verbose:   a.Config.Verbose,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, &cli.CLIResultPresenter{}, out)

	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if a.Config.OutputFile != "" {
			fmt.Fprintf(out, "\n%sResult saved to %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

// findBestResult returns the fastest exact result, falling back to the
// fastest successful one when every algorithm is approximate.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if best == nil || (results[i].Exact && !best.Exact) ||
			(results[i].Exact == best.Exact && results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}

func (a *Application) saveResultIfNeeded(res *orchestration.CalculationResult) error {
	if a.Config.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(a.Config.OutputFile, a.Config.N, res.Result); err != nil {
		a.Logger.Error("saving result failed", err, logging.String("path", a.Config.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
