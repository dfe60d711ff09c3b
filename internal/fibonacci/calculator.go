package fibonacci

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/numlab/internal/errors"
)

var (
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numlab_fibonacci_calculations_total",
			Help: "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)
	calculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "numlab_fibonacci_calculation_duration_seconds",
			Help: "The duration of Fibonacci calculations in seconds",
		},
		[]string{"algorithm"},
	)
)

// ProgressReporter is the callback used by core algorithms to report
// fractional progress in the range [0.0, 1.0].
type ProgressReporter func(progress float64)

// ProgressUpdate carries one progress sample from a running calculator to a
// consumer such as the CLI progress bar or the TUI.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator instance when several run
	// concurrently.
	CalculatorIndex int
	// Value is the normalized progress (0.0 to 1.0).
	Value float64
}

// Calculator defines the public interface for a Fibonacci calculator.
// It is the primary abstraction used by the application's orchestration layer
// to interact with the different algorithms.
type Calculator interface {
	// Calculate computes the n-th Fibonacci number. It supports cancellation
	// through the provided context. Progress updates are sent asynchronously to
	// progressChan when it is non-nil; updates are lossy and may be dropped if
	// the consumer falls behind.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates (may be nil).
	//   - calcIndex: A unique index for the calculator instance.
	//   - n: The index of the Fibonacci number to calculate.
	//
	// Returns:
	//   - *big.Int: The calculated Fibonacci number.
	//   - error: An error if one occurred (invalid argument, context cancellation).
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int) (*big.Int, error)

	// Name returns the display name of the calculation algorithm.
	Name() string

	// Exact reports whether the algorithm produces exact integer results.
	// The Binet closed-form variants return false: their results are
	// approximations once float64 rounding kicks in, which is a documented
	// accuracy limitation rather than an error.
	Exact() bool
}

// coreCalculator defines the internal interface for a pure calculation
// algorithm.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n int) (*big.Int, error)
	Name() string
	Exact() bool
}

// FibCalculator is an implementation of the Calculator interface that uses the
// Decorator design pattern. It wraps a coreCalculator to add cross-cutting
// concerns: tracing, metrics, debug logging and the adaptation of the progress
// reporting mechanism.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator is a factory function that constructs and returns a new
// FibCalculator wrapping the given core algorithm. This function panics if the
// core calculator is nil, ensuring system integrity.
//
// Parameters:
//   - core: The core calculator to be wrapped.
//
// Returns:
//   - Calculator: A new FibCalculator instance implementing the Calculator interface.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the encapsulated coreCalculator, fulfilling the
// Calculator interface by delegating the call.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Exact delegates to the encapsulated coreCalculator.
func (c *FibCalculator) Exact() bool {
	return c.core.Exact()
}

// Calculate orchestrates the calculation process.
// It adapts the progressChan into a ProgressReporter callback, records
// tracing spans and metrics around the core calculation, and ensures a final
// 100% progress report on success.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - progressChan: The channel for sending progress updates (may be nil).
//   - calcIndex: A unique index for the calculator instance.
//   - n: The index of the Fibonacci number to calculate.
//
// Returns:
//   - *big.Int: The calculated Fibonacci number.
//   - error: An error if one occurred.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n int) (result *big.Int, err error) {
	tracer := otel.Tracer("fibonacci")
	ctx, span := tracer.Start(ctx, "Calculate")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := c.core.Name()
		calculationsTotal.WithLabelValues(algoName, status).Inc()
		calculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	var reporter ProgressReporter
	if progressChan != nil {
		reporter = func(p float64) {
			// Lossy send: dropping an update is preferable to blocking the
			// calculation loop on a slow consumer.
			select {
			case progressChan <- ProgressUpdate{CalculatorIndex: calcIndex, Value: p}:
			default:
			}
		}
	} else {
		reporter = func(float64) {}
	}

	result, err = c.core.CalculateCore(ctx, reporter, n)
	if err == nil && result != nil {
		reporter(1.0)
	}
	return result, err
}

// checkIndex validates the shared input contract of every Fibonacci variant:
// the index must not be negative.
func checkIndex(n int) error {
	if n < 0 {
		return apperrors.NewInvalidArgument("n", int64(n), "must not be negative")
	}
	return nil
}
