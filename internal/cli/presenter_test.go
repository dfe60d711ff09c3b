package cli

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/numlab/internal/errors"
	"github.com/agbru/numlab/internal/orchestration"
)

func TestPadRight(t *testing.T) {
	cases := []struct {
		s     string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 2, "  "},
	}
	for _, tc := range cases {
		if got := padRight(tc.s, tc.width); got != tc.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestPresentComparisonTable(t *testing.T) {
	presenter := &CLIResultPresenter{}
	results := []orchestration.CalculationResult{
		{Name: "fast", Result: big.NewInt(55), Duration: time.Millisecond, Exact: true},
		{Name: "approx", Result: big.NewInt(55), Duration: 2 * time.Millisecond, Exact: false},
		{Name: "broken", Err: errors.New("boom")},
	}

	var buf strings.Builder
	presenter.PresentComparisonTable(results, &buf)

	out := buf.String()
	for _, want := range []string{"ALGORITHM", "fast", "OK", "approx", "approximate", "broken", "FAILED: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestPresentResult(t *testing.T) {
	presenter := &CLIResultPresenter{}
	result := orchestration.CalculationResult{Name: "fast", Result: big.NewInt(55), Duration: time.Millisecond}

	var buf strings.Builder
	presenter.PresentResult(result, orchestration.PresentationOptions{N: 10}, &buf)

	if !strings.Contains(buf.String(), "F(10) = 55") {
		t.Errorf("output %q missing result line", buf.String())
	}
}

func TestHandleError_MapsExitCodes(t *testing.T) {
	presenter := &CLIResultPresenter{}

	var buf strings.Builder
	code := presenter.HandleError(context.DeadlineExceeded, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}

	code = presenter.HandleError(apperrors.NewInvalidArgument("n", -1, "index cannot be negative"), 0, &buf)
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestCLIColorProvider_NoColorTheme(t *testing.T) {
	// InitTheme(true) in this package's test init selects the colorless theme.
	provider := CLIColorProvider{}
	if provider.Red() != "" || provider.Yellow() != "" || provider.Reset() != "" {
		t.Error("color provider returned ANSI fragments under the no-color theme")
	}
}
