package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/numlab/internal/errors"
)

func TestNew_ParsesArguments(t *testing.T) {
	application, err := New([]string{"numlab", "-n", "30", "-algo", "matrix", "-q"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if application.Config.N != 30 {
		t.Errorf("N = %d, want 30", application.Config.N)
	}
	if application.Config.Algo != "matrix" {
		t.Errorf("Algo = %q, want matrix", application.Config.Algo)
	}
	if !application.Config.Quiet {
		t.Error("Quiet = false, want true")
	}
	if application.Config.Demo {
		t.Error("Demo = true, want false when -n is given")
	}
}

func TestNew_RejectsUnknownAlgorithm(t *testing.T) {
	if _, err := New([]string{"numlab", "-algo", "quantum"}, io.Discard); err == nil {
		t.Fatal("New accepted an unknown algorithm")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	_, err := New([]string{"numlab", "-help"}, io.Discard)
	if !IsHelpError(err) {
		t.Fatalf("New(-help) returned %v, want flag.ErrHelp", err)
	}
}

func TestRun_QuietSingleAlgorithm(t *testing.T) {
	application, err := New([]string{"numlab", "-n", "30", "-algo", "matrix", "-q", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0; output:\n%s", code, buf.String())
	}
	if strings.TrimSpace(buf.String()) != "832040" {
		t.Errorf("quiet output = %q, want %q", strings.TrimSpace(buf.String()), "832040")
	}
}

func TestRun_ComparisonAllAlgorithms(t *testing.T) {
	// n=30 keeps the recursive variant within its default cap so every
	// registered algorithm succeeds.
	application, err := New([]string{"numlab", "-n", "30", "-q", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0; output:\n%s", code, buf.String())
	}
	if strings.TrimSpace(buf.String()) != "832040" {
		t.Errorf("quiet output = %q, want %q", strings.TrimSpace(buf.String()), "832040")
	}
}

func TestRun_NegativeIndexExitsWithConfigCode(t *testing.T) {
	application, err := New([]string{"numlab", "-n", "-5", "-algo", "matrix", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d; output:\n%s", code, apperrors.ExitErrorConfig, buf.String())
	}
}

func TestRun_PiLatticeQuiet(t *testing.T) {
	application, err := New([]string{"numlab", "-pi", "lattice", "-samples", "1000", "-q", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !application.Config.PiMode {
		t.Fatal("PiMode = false, want true")
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0; output:\n%s", code, buf.String())
	}
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "3.1") {
		t.Errorf("quiet pi output = %q, want a value near π", buf.String())
	}
}

func TestRun_PiSeededMonteCarloReproducible(t *testing.T) {
	run := func() string {
		application, err := New([]string{"numlab", "-pi", "montecarlo", "-samples", "10000", "-seed", "42", "-q", "-no-color"}, io.Discard)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var buf strings.Builder
		if code := application.Run(context.Background(), &buf); code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d; output:\n%s", code, buf.String())
		}
		return buf.String()
	}
	if first, second := run(), run(); first != second {
		t.Errorf("seeded runs differ: %q vs %q", first, second)
	}
}

func TestRun_Demo(t *testing.T) {
	application, err := New([]string{"numlab", "-demo", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0; output:\n%s", code, buf.String())
	}

	out := buf.String()
	for _, want := range []string{
		"Fibonacci variants",
		"0 1 1 2 3 5 8 13 21 34 55",
		"Dynamic-programming sequence",
		"π estimation",
		"lattice",
		"montecarlo",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

func TestRun_DemoIsDefaultMode(t *testing.T) {
	application, err := New([]string{"numlab", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !application.Config.Demo {
		t.Fatal("Demo = false, want true with no calculation flags")
	}
}

func TestRun_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fib.txt")
	application, err := New([]string{"numlab", "-n", "30", "-algo", "iterative", "-q", "-o", path, "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	if code := application.Run(context.Background(), &buf); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, buf.String())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(content), "832040") {
		t.Errorf("saved file %q missing result", content)
	}
}

func TestRun_RecursionLimitFlag(t *testing.T) {
	application, err := New([]string{"numlab", "-n", "15", "-algo", "recursive", "-recursion-limit", "10", "-no-color"}, io.Discard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf strings.Builder
	code := application.Run(context.Background(), &buf)
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d for an index beyond the recursion limit", code, apperrors.ExitErrorConfig)
	}
}
