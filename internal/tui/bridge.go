package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Messages exchanged between the bridge goroutines and the model.
type (
	// ProgressMsg carries one per-calculator progress update plus the
	// recomputed average across all calculators.
	ProgressMsg struct {
		CalculatorIndex int
		Value           float64
		AverageProgress float64
	}

	// ProgressDoneMsg signals that the progress channel has closed.
	ProgressDoneMsg struct{}

	// ComparisonResultsMsg carries the sorted comparison results.
	ComparisonResultsMsg struct {
		Results []orchestration.CalculationResult
	}

	// FinalResultMsg carries the winning result selected by the analysis.
	FinalResultMsg struct {
		Result orchestration.CalculationResult
		N      int
	}

	// ErrorMsg reports a calculation-level failure.
	ErrorMsg struct {
		Err      error
		Duration time.Duration
	}

	// CalculationCompleteMsg signals the end of an orchestration run.
	CalculationCompleteMsg struct {
		ExitCode   int
		Generation uint64
	}

	// ContextCancelledMsg signals parent context cancellation.
	ContextCancelledMsg struct {
		Err        error
		Generation uint64
	}

	// TickMsg drives the elapsed timer and system stat sampling.
	TickMsg time.Time

	// SysStatsMsg carries a system-wide CPU/memory sample.
	SysStatsMsg struct {
		CPUPercent float64
		MemPercent float64
	}
)

// TUIProgressReporter implements orchestration.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, _ io.Writer) {
	defer wg.Done()

	if numCalculators <= 0 {
		for range progressChan {
		}
		return
	}

	progresses := make([]float64, numCalculators)
	for update := range progressChan {
		if update.CalculatorIndex >= 0 && update.CalculatorIndex < numCalculators {
			progresses[update.CalculatorIndex] = update.Value
		}
		var total float64
		for _, p := range progresses {
			total += p
		}
		t.ref.Send(ProgressMsg{
			CalculatorIndex: update.CalculatorIndex,
			Value:           update.Value,
			AverageProgress: total / float64(numCalculators),
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter.
// It sends result messages to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends comparison results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentResult sends the final result to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result, N: opts.N})
}

// HandleError sends an error message to the TUI and returns the exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration})
	return apperrors.HandleCalculationError(err, duration, io.Discard, nil)
}
