package pi

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/numlab/internal/errors"
)

var (
	estimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numlab_pi_estimates_total",
			Help: "The total number of pi estimations processed",
		},
		[]string{"method", "status"},
	)
	estimateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "numlab_pi_estimate_duration_seconds",
			Help: "The duration of pi estimations in seconds",
		},
		[]string{"method"},
	)
)

// ProgressReporter is the callback used by core estimators to report
// fractional progress in the range [0.0, 1.0].
type ProgressReporter func(progress float64)

// Estimator is the public interface for a π estimation strategy.
type Estimator interface {
	// Estimate computes an approximation of π with parameter n (grid radius
	// for the lattice method, sample count for Monte Carlo). It supports
	// cancellation through the provided context.
	Estimate(ctx context.Context, n int) (float64, error)

	// Name returns the display name of the estimation method.
	Name() string

	// Deterministic reports whether the same n always yields the same result.
	Deterministic() bool
}

// coreEstimator is the internal interface implemented by the pure estimation
// algorithms.
type coreEstimator interface {
	EstimateCore(ctx context.Context, reporter ProgressReporter, n int) (float64, error)
	Name() string
	Deterministic() bool
}

// piEstimator decorates a coreEstimator with tracing, metrics and debug
// logging, mirroring the Fibonacci package's calculator decorator.
type piEstimator struct {
	core     coreEstimator
	reporter ProgressReporter
}

// NewEstimator wraps a core estimation algorithm with the cross-cutting
// concerns. Panics if core is nil.
//
// Parameters:
//   - core: The core estimator to be wrapped.
//
// Returns:
//   - Estimator: A new Estimator instance.
func NewEstimator(core coreEstimator) Estimator {
	if core == nil {
		panic("pi: the `coreEstimator` implementation cannot be nil")
	}
	return &piEstimator{core: core, reporter: func(float64) {}}
}

// Name delegates to the wrapped core.
func (e *piEstimator) Name() string { return e.core.Name() }

// Deterministic delegates to the wrapped core.
func (e *piEstimator) Deterministic() bool { return e.core.Deterministic() }

// Estimate runs the core algorithm inside a tracing span and records the
// outcome in the package metrics.
func (e *piEstimator) Estimate(ctx context.Context, n int) (result float64, err error) {
	tracer := otel.Tracer("pi")
	ctx, span := tracer.Start(ctx, "Estimate")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		method := e.core.Name()
		estimatesTotal.WithLabelValues(method, status).Inc()
		estimateDuration.WithLabelValues(method).Observe(duration)

		log.Debug().
			Str("method", method).
			Int("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("pi estimation completed")
	}()

	return e.core.EstimateCore(ctx, e.reporter, n)
}

// checkCount validates the shared input contract of both estimators:
// the parameter must not be negative.
func checkCount(n int) error {
	if n < 0 {
		return apperrors.NewInvalidArgument("n", int64(n), "must not be negative")
	}
	return nil
}

// Registry is a thread-safe registry of π estimation strategies, the small
// sibling of the Fibonacci calculator factory.
type Registry struct {
	mu         sync.RWMutex
	creators   map[string]func() coreEstimator
	estimators map[string]Estimator
}

// NewRegistry creates a registry with the two standard estimators
// pre-registered:
//   - "lattice": exhaustive grid counting (deterministic, O(n²))
//   - "montecarlo": uniform random sampling (statistical, O(n))
func NewRegistry() *Registry {
	r := &Registry{
		creators:   make(map[string]func() coreEstimator),
		estimators: make(map[string]Estimator),
	}
	r.Register("lattice", func() coreEstimator { return &Lattice{} })
	r.Register("montecarlo", func() coreEstimator { return NewMonteCarlo(time.Now().UnixNano()) })
	return r
}

// Register adds an estimation strategy, replacing any existing one with the
// same name.
func (r *Registry) Register(name string, creator func() coreEstimator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[name] = creator
	delete(r.estimators, name)
}

// SetMonteCarloSeed re-registers the Monte Carlo estimator with a fixed seed
// for reproducible runs. A zero seed leaves the time-derived default in place.
func (r *Registry) SetMonteCarloSeed(seed int64) {
	if seed == 0 {
		return
	}
	r.Register("montecarlo", func() coreEstimator { return NewMonteCarlo(seed) })
}

// Get returns the named estimator, instantiating and caching it on first use.
func (r *Registry) Get(name string) (Estimator, error) {
	r.mu.RLock()
	if est, ok := r.estimators[name]; ok {
		r.mu.RUnlock()
		return est, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if est, ok := r.estimators[name]; ok {
		return est, nil
	}
	creator, ok := r.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown pi estimator: %s", name)
	}
	est := NewEstimator(creator())
	r.estimators[name] = est
	return est, nil
}

// List returns the sorted names of the registered estimators.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.creators))
	for name := range r.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// globalRegistry is the default registry instance.
var globalRegistry = NewRegistry()

// GlobalRegistry returns the process-wide estimator registry.
func GlobalRegistry() *Registry {
	return globalRegistry
}
