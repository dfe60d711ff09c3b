package tui

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/numlab/internal/config"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/orchestration"
)

func TestProgramRef_NilProgramIsSafe(t *testing.T) {
	ref := &programRef{}
	// Sending before SetProgram must be a harmless no-op: the bridge
	// goroutines can start before the program is wired up.
	ref.Send(ProgressDoneMsg{})
}

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}}

	progressChan := make(chan fibonacci.ProgressUpdate, 4)
	var wg sync.WaitGroup
	wg.Add(1)

	done := make(chan struct{})
	go func() {
		reporter.DisplayProgress(&wg, progressChan, 2, nil)
		close(done)
	}()

	progressChan <- fibonacci.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
	progressChan <- fibonacci.ProgressUpdate{CalculatorIndex: 1, Value: 1.0}
	close(progressChan)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("DisplayProgress did not terminate after channel close")
	}
}

func TestModel_UpdateTransitions(t *testing.T) {
	ctx := context.Background()
	factory := fibonacci.NewDefaultFactory()
	calc, _ := factory.Get("iterative")
	cfg := config.AppConfig{N: 10, Algo: "iterative", Timeout: time.Minute}

	m := NewModel(ctx, []fibonacci.Calculator{calc}, cfg, "test")
	defer m.cancel()

	// Window sizing enables rendering.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)
	if m.width != 80 || m.height != 24 {
		t.Fatalf("size = %dx%d, want 80x24", m.width, m.height)
	}

	// Progress updates move the gauge.
	updated, _ = m.Update(ProgressMsg{CalculatorIndex: 0, Value: 0.5, AverageProgress: 0.5})
	m = updated.(Model)
	if m.progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", m.progress)
	}

	// Completion freezes the run and records the exit code.
	updated, _ = m.Update(CalculationCompleteMsg{ExitCode: apperrors.ExitSuccess, Generation: 0})
	m = updated.(Model)
	if !m.done {
		t.Error("done = false after CalculationCompleteMsg")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want 0", m.exitCode)
	}

	// Stale messages from a previous generation are ignored.
	m.done = false
	updated, _ = m.Update(CalculationCompleteMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 99})
	m = updated.(Model)
	if m.done {
		t.Error("stale CalculationCompleteMsg was not ignored")
	}

	if view := m.View(); view == "" {
		t.Error("View() returned an empty dashboard")
	}
}

func TestModel_ErrorMessageMarksFailure(t *testing.T) {
	ctx := context.Background()
	factory := fibonacci.NewDefaultFactory()
	calc, _ := factory.Get("iterative")
	m := NewModel(ctx, []fibonacci.Calculator{calc}, config.AppConfig{N: 10, Timeout: time.Minute}, "test")
	defer m.cancel()

	updated, _ := m.Update(ErrorMsg{Err: errors.New("boom"), Duration: time.Second})
	m = updated.(Model)
	if !m.failed {
		t.Error("failed = false after ErrorMsg")
	}
}

func TestModel_ComparisonResultsLogged(t *testing.T) {
	ctx := context.Background()
	factory := fibonacci.NewDefaultFactory()
	calc, _ := factory.Get("iterative")
	m := NewModel(ctx, []fibonacci.Calculator{calc}, config.AppConfig{N: 10, Timeout: time.Minute}, "test")
	defer m.cancel()

	logsBefore := len(m.logs)
	updated, _ := m.Update(ComparisonResultsMsg{Results: []orchestration.CalculationResult{
		{Name: "iterative", Result: big.NewInt(55), Duration: time.Millisecond, Exact: true},
		{Name: "binet", Result: big.NewInt(55), Duration: time.Millisecond, Exact: false},
		{Name: "broken", Err: errors.New("boom")},
	}})
	m = updated.(Model)

	if len(m.logs) != logsBefore+3 {
		t.Errorf("log count = %d, want %d", len(m.logs), logsBefore+3)
	}
}
