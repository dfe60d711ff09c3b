package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/agbru/numlab/internal/cli"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/metrics"
	"github.com/agbru/numlab/internal/ui"
)

// Demo parameters. The walkthrough keeps indices small so every variant,
// including the exponential recursive one, finishes instantly.
const (
	demoMaxIndex       = 10
	demoMonteCarloRuns = 5
)

var (
	demoLatticeRadii      = []int{10, 100, 1000, 2000, 5000}
	demoMonteCarloSamples = []int{100, 1000, 10000}
)

// runDemo walks through every registered Fibonacci variant over a small index
// range, prints the DP sequence, and finishes with both π estimators. This is
// the default mode when no calculation flags are given.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	if code := a.demoFibonacci(ctx, out); code != apperrors.ExitSuccess {
		return code
	}
	if code := a.demoSequence(ctx, out); code != apperrors.ExitSuccess {
		return code
	}
	if code := a.demoPi(ctx, out); code != apperrors.ExitSuccess {
		return code
	}

	if a.Config.Verbose {
		delta := collector.Snapshot().Delta(before)
		fmt.Fprintf(out, "\n%sMemory: %s allocated, %d GC cycles%s\n",
			ui.ColorCyan(), metrics.FormatBytes(delta.TotalAlloc), delta.NumGC, ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

func demoHeader(out io.Writer, title string) {
	fmt.Fprintf(out, "\n%s%s%s\n%s\n", ui.ColorBold(), title, ui.ColorReset(), strings.Repeat("=", len(title)))
}

// demoFibonacci prints F(0)..F(demoMaxIndex) for every registered variant.
func (a *Application) demoFibonacci(ctx context.Context, out io.Writer) int {
	demoHeader(out, fmt.Sprintf("Fibonacci variants, F(0)..F(%d)", demoMaxIndex))

	for _, name := range a.Factory.List() {
		calc, err := a.Factory.Get(name)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return apperrors.ExitErrorGeneric
		}

		values := make([]string, 0, demoMaxIndex+1)
		start := time.Now()
		for n := 0; n <= demoMaxIndex; n++ {
			v, err := calc.Calculate(ctx, nil, 0, n)
			if err != nil {
				return apperrors.HandleCalculationError(err, time.Since(start), out, cli.CLIColorProvider{})
			}
			values = append(values, v.Text(10))
		}

		marker := ""
		if !calc.Exact() {
			marker = ui.ColorYellow() + " (approximate)" + ui.ColorReset()
		}
		fmt.Fprintf(out, "%-14s %s%s  %s[%s]%s\n",
			name, strings.Join(values, " "), marker,
			ui.ColorCyan(), cli.FormatExecutionDuration(time.Since(start)), ui.ColorReset())
	}
	return apperrors.ExitSuccess
}

// demoSequence prints the full DP table for demoMaxIndex in one call.
func (a *Application) demoSequence(ctx context.Context, out io.Writer) int {
	demoHeader(out, fmt.Sprintf("Dynamic-programming sequence, n=%d", demoMaxIndex))

	seq := &fibonacci.Sequence{}
	values, err := seq.Values(ctx, nil, demoMaxIndex)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Text(10)
	}
	fmt.Fprintf(out, "[%s]\n", strings.Join(parts, ", "))
	return apperrors.ExitSuccess
}

// demoPi runs the lattice estimator over increasing radii, then several
// Monte Carlo trials per sample size to make the stochastic spread visible.
func (a *Application) demoPi(ctx context.Context, out io.Writer) int {
	demoHeader(out, "π estimation")

	lattice, err := a.Registry.Get("lattice")
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	for _, radius := range demoLatticeRadii {
		start := time.Now()
		estimate, err := lattice.Estimate(ctx, radius)
		if err != nil {
			return apperrors.HandleCalculationError(err, time.Since(start), out, cli.CLIColorProvider{})
		}
		fmt.Fprintf(out, "lattice     n=%-6d π ≈ %.10f  %s[%s]%s\n",
			radius, estimate,
			ui.ColorCyan(), cli.FormatExecutionDuration(time.Since(start)), ui.ColorReset())
	}

	mc, err := a.Registry.Get("montecarlo")
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
	for _, samples := range demoMonteCarloSamples {
		estimates := make([]string, 0, demoMonteCarloRuns)
		start := time.Now()
		for run := 0; run < demoMonteCarloRuns; run++ {
			estimate, err := mc.Estimate(ctx, samples)
			if err != nil {
				return apperrors.HandleCalculationError(err, time.Since(start), out, cli.CLIColorProvider{})
			}
			estimates = append(estimates, fmt.Sprintf("%.6f", estimate))
		}
		fmt.Fprintf(out, "montecarlo  n=%-6d π ≈ %s  %s[%s]%s\n",
			samples, strings.Join(estimates, " "),
			ui.ColorCyan(), cli.FormatExecutionDuration(time.Since(start)), ui.ColorReset())
	}
	return apperrors.ExitSuccess
}
