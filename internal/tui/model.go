package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numlab/internal/config"
	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/fibonacci"
	"github.com/agbru/numlab/internal/orchestration"
	"github.com/agbru/numlab/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	headerHeight  = 1
	footerHeight  = 1
	gaugeHeight   = 3
	minBodyHeight = 4
	maxLogLines   = 200
	tickInterval  = 500 * time.Millisecond
)

// Model is the root bubbletea model for the monitoring dashboard. It shows a
// scrolling event log, an aggregated progress gauge, and live system stats
// while the orchestration runs in the background.
type Model struct {
	parentCtx context.Context
	ctx       context.Context
	cancel    context.CancelFunc

	calculators []fibonacci.Calculator
	config      config.AppConfig
	version     string
	ref         *programRef
	keymap      KeyMap

	sampler *sysmon.Sampler

	startTime time.Time
	endTime   time.Time

	logs      []string
	scrollOff int

	progress   float64
	cpuPercent float64
	memPercent float64

	generation uint64
	done       bool
	failed     bool
	exitCode   int

	width  int
	height int
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	m := Model{
		parentCtx:   parentCtx,
		ctx:         ctx,
		cancel:      cancel,
		calculators: calculators,
		config:      cfg,
		version:     version,
		ref:         &programRef{},
		keymap:      DefaultKeyMap(),
		sampler:     sysmon.NewSampler(sparklineWidth),
		startTime:   time.Now(),
		exitCode:    apperrors.ExitSuccess,
	}
	m.addLog(fmt.Sprintf("computing F(%d) with %d algorithm(s)", cfg.N, len(calculators)))
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

func (m *Model) addLog(line string) {
	stamp := logTimeStyle.Render(time.Now().Format("15:04:05"))
	m.logs = append(m.logs, stamp+" "+line)
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
	m.scrollOff = 0 // snap to tail on new activity
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProgressMsg:
		m.progress = msg.AverageProgress
		return m, nil

	case ProgressDoneMsg:
		m.progress = 1.0
		return m, nil

	case ComparisonResultsMsg:
		for _, res := range msg.Results {
			name := logAlgoStyle.Render(res.Name)
			if res.Err != nil {
				m.addLog(fmt.Sprintf("%s %s", name, logErrorStyle.Render("failed: "+res.Err.Error())))
			} else if !res.Exact {
				m.addLog(fmt.Sprintf("%s %s in %s", name, logWarnStyle.Render("done (approximate)"), res.Duration))
			} else {
				m.addLog(fmt.Sprintf("%s %s in %s", name, logSuccessStyle.Render("done"), res.Duration))
			}
		}
		return m, nil

	case FinalResultMsg:
		if msg.Result.Result != nil {
			digits := len(msg.Result.Result.Text(10))
			if msg.Result.Result.Sign() < 0 {
				digits--
			}
			m.addLog(fmt.Sprintf("F(%d) has %d digits (best: %s)",
				msg.N, digits, logAlgoStyle.Render(msg.Result.Name)))
		}
		return m, nil

	case ErrorMsg:
		m.addLog(logErrorStyle.Render(fmt.Sprintf("error after %s: %v", msg.Duration, msg.Err)))
		m.failed = true
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(m.sampler), tickCmd())

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.endTime = time.Now()
		m.addLog(fmt.Sprintf("run finished in %s (exit code %d)", m.elapsed(), msg.ExitCode))
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.endTime = time.Now()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Restart):
		if m.cancel != nil {
			m.cancel()
		}
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel
		m.startTime = time.Now()
		m.endTime = time.Time{}
		m.logs = nil
		m.scrollOff = 0
		m.progress = 0
		m.done = false
		m.failed = false
		m.exitCode = apperrors.ExitSuccess
		m.addLog(fmt.Sprintf("restarting F(%d) with %d algorithm(s)", m.config.N, len(m.calculators)))
		return m, tea.Batch(
			tickCmd(),
			startCalculationCmd(m.ref, m.ctx, m.calculators, m.config, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		if m.scrollOff < len(m.logs)-1 {
			m.scrollOff++
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.scrollOff > 0 {
			m.scrollOff--
		}
		return m, nil
	}

	return m, nil
}

func (m Model) elapsed() time.Duration {
	end := m.endTime
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(m.startTime).Round(10 * time.Millisecond)
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight - gaugeHeight
	if h < minBodyHeight {
		h = minBodyHeight
	}
	return h
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderLogs(),
		m.renderGauge(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("numlab monitor")
	if m.version != "" && m.version != "dev" {
		title += " " + versionStyle.Render(m.version)
	}
	history := m.sampler.History()
	cpuTrend := make([]float64, len(history))
	for i, s := range history {
		cpuTrend[i] = s.CPUPercent
	}
	right := elapsedStyle.Render(m.elapsed().String()) + " " +
		sysStatStyle.Render(fmt.Sprintf("cpu %s %5.1f%%  mem %5.1f%%",
			sparkline(cpuTrend, sparklineWidth), m.cpuPercent, m.memPercent))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderLogs() string {
	h := m.bodyHeight() - 2 // borders
	if h < 1 {
		h = 1
	}
	end := len(m.logs) - m.scrollOff
	if end < 0 {
		end = 0
	}
	start := end - h
	if start < 0 {
		start = 0
	}
	content := strings.Join(m.logs[start:end], "\n")
	return panelStyle.Width(m.width - 2).Height(h).Render(content)
}

func (m Model) renderGauge() string {
	innerWidth := m.width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}
	filled := int(m.progress * float64(innerWidth))
	if filled > innerWidth {
		filled = innerWidth
	}
	bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", innerWidth-filled))
	label := fmt.Sprintf("%6.2f%%", m.progress*100)
	return panelStyle.Width(m.width - 2).Render(bar + " " + label)
}

func (m Model) renderFooter() string {
	status := statusRunStyle.Render("RUNNING")
	if m.failed {
		status = statusErrorStyle.Render("FAILED")
	} else if m.done {
		status = statusDoneStyle.Render("DONE")
	}

	hints := []string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart"),
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll"),
	}
	return status + "  " + strings.Join(hints, "  ")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, calculators, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd returns a tea.Cmd that launches the orchestration.
func startCalculationCmd(ref *programRef, ctx context.Context, calculators []fibonacci.Calculator, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteCalculations(ctx, calculators, cfg.N, progressReporter, io.Discard)
		presOpts := orchestration.PresentationOptions{
			N:         cfg.N,
			Verbose:   cfg.Verbose,
			ShowValue: cfg.ShowValue,
		}
		exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, io.Discard)

		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats through the
// sampler, which retains the short history rendered as the header sparkline.
func sampleSysStatsCmd(sampler *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		s := sampler.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
