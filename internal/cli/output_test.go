package cli

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/numlab/internal/ui"
)

func init() {
	// Tests assert on plain text.
	ui.InitTheme(true)
}

// bigFib computes F(n) iteratively for building expectations.
func bigFib(n int) *big.Int {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

func TestDisplayResult_SmallValue(t *testing.T) {
	var buf strings.Builder
	DisplayResult(&buf, 10, big.NewInt(55), time.Millisecond, false, false)

	if !strings.Contains(buf.String(), "F(10) = 55") {
		t.Errorf("output %q missing full value", buf.String())
	}
	if strings.Contains(buf.String(), "digits") {
		t.Errorf("output %q mentions digits for a small value", buf.String())
	}
}

func TestDisplayResult_TruncatesLargeValue(t *testing.T) {
	value := bigFib(1000) // 209 digits
	var buf strings.Builder
	DisplayResult(&buf, 1000, value, time.Millisecond, false, false)

	out := buf.String()
	if !strings.Contains(out, "...") {
		t.Errorf("output %q not truncated", out)
	}
	if !strings.Contains(out, "(209 digits)") {
		t.Errorf("output %q missing digit count", out)
	}

	full := value.Text(10)
	if !strings.Contains(out, full[:DisplayEdges]) || !strings.Contains(out, full[len(full)-DisplayEdges:]) {
		t.Errorf("output %q missing leading/trailing digits", out)
	}
}

func TestDisplayResult_ShowValueForcesFullExpansion(t *testing.T) {
	value := bigFib(1000)
	var buf strings.Builder
	DisplayResult(&buf, 1000, value, time.Millisecond, false, true)

	if !strings.Contains(buf.String(), value.Text(10)) {
		t.Errorf("output does not contain the full %d-digit value", len(value.Text(10)))
	}
}

func TestDisplayResult_VerboseShowsDuration(t *testing.T) {
	var buf strings.Builder
	DisplayResult(&buf, 10, big.NewInt(55), 3*time.Millisecond, true, false)

	if !strings.Contains(buf.String(), "3ms") {
		t.Errorf("output %q missing duration", buf.String())
	}
}

func TestFormatQuietResult(t *testing.T) {
	if got := FormatQuietResult(big.NewInt(832040)); got != "832040" {
		t.Errorf("FormatQuietResult = %q, want 832040", got)
	}
}

func TestDisplayPiResult(t *testing.T) {
	var buf strings.Builder
	DisplayPiResult(&buf, "lattice", 1000, 3.1415926535, time.Millisecond, false)

	out := buf.String()
	if !strings.Contains(out, "3.1415926535") || !strings.Contains(out, "lattice") || !strings.Contains(out, "n=1000") {
		t.Errorf("output %q missing estimate, method or count", out)
	}
}

func TestWriteResultToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.txt")

	if err := WriteResultToFile(path, 30, big.NewInt(832040)); err != nil {
		t.Fatalf("WriteResultToFile: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(content) != "F(30) = 832040\n" {
		t.Errorf("file content = %q, want %q", content, "F(30) = 832040\n")
	}
}

func TestWriteResultToFile_BadPath(t *testing.T) {
	err := WriteResultToFile(filepath.Join(t.TempDir(), "missing", "result.txt"), 1, big.NewInt(1))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
