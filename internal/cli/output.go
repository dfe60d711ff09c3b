package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/agbru/numlab/internal/ui"
)

// OutputConfig holds the subset of configuration relevant to result display.
type OutputConfig struct {
	N          int
	Verbose    bool
	ShowValue  bool
	OutputFile string
}

// formatTruncated returns the decimal representation of value, shortened to
// its first and last DisplayEdges digits when it exceeds TruncationLimit
// digits.
func formatTruncated(value *big.Int) (text string, digits int, truncated bool) {
	text = value.Text(10)
	digits = len(text)
	if value.Sign() < 0 {
		digits--
	}
	if digits <= TruncationLimit {
		return text, digits, false
	}
	head := text[:DisplayEdges]
	tail := text[len(text)-DisplayEdges:]
	return fmt.Sprintf("%s...%s", head, tail), digits, true
}

// DisplayResult writes a formatted calculation result to out.
//
// Very large numbers are truncated unless showValue forces the full decimal
// expansion; the digit count is always reported for truncated values.
func DisplayResult(out io.Writer, n int, result *big.Int, duration time.Duration, verbose, showValue bool) {
	if verbose {
		fmt.Fprintf(out, "%sCalculation completed in %s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	}

	text, digits, truncated := formatTruncated(result)
	if showValue || !truncated {
		fmt.Fprintf(out, "F(%d) = %s\n", n, result.Text(10))
	} else {
		fmt.Fprintf(out, "F(%d) = %s (%d digits)\n", n, text, digits)
	}
	if truncated && !showValue && verbose {
		fmt.Fprintf(out, "%sUse -value to display all %d digits.%s\n", ui.ColorYellow(), digits, ui.ColorReset())
	}
}

// FormatQuietResult renders a result as a single machine-friendly line.
func FormatQuietResult(result *big.Int) string {
	return result.Text(10)
}

// DisplayQuietResult writes only the decimal value, for script consumption.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayPiResult writes a formatted π estimate to out.
func DisplayPiResult(out io.Writer, method string, n int, estimate float64, duration time.Duration, verbose bool) {
	if verbose {
		fmt.Fprintf(out, "%sEstimation completed in %s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
	}
	fmt.Fprintf(out, "π ≈ %.10f (%s, n=%d)\n", estimate, method, n)
}

// WriteResultToFile saves the full decimal expansion of result to path.
// The file is created with 0644 permissions and overwritten if it exists.
func WriteResultToFile(path string, n int, result *big.Int) error {
	content := fmt.Sprintf("F(%d) = %s\n", n, result.Text(10))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing result to %s: %w", path, err)
	}
	return nil
}
