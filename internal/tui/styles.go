package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/numlab/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	versionStyle     lipgloss.Style
	elapsedStyle     lipgloss.Style
	logTimeStyle     lipgloss.Style
	logAlgoStyle     lipgloss.Style
	logSuccessStyle  lipgloss.Style
	logWarnStyle     lipgloss.Style
	logErrorStyle    lipgloss.Style
	barFilledStyle   lipgloss.Style
	barEmptyStyle    lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusRunStyle   lipgloss.Style
	statusDoneStyle  lipgloss.Style
	statusErrorStyle lipgloss.Style
	sysStatStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	logTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	logAlgoStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	logSuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	logWarnStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	logErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	barFilledStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	barEmptyStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusRunStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Info)

	statusDoneStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	statusErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)

	sysStatStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
