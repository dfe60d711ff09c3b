// Package config provides the configuration management for the numlab
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"flag"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/numlab/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variables used by numlab.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "NUMLAB_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultN is the default Fibonacci index to calculate.
	DefaultN = 30
	// DefaultSamples is the default sample count for π estimation.
	DefaultSamples = 100_000
	// DefaultTimeout is the default calculation timeout.
	DefaultTimeout = 1 * time.Minute
	// DefaultAlgo is the default Fibonacci algorithm selection.
	DefaultAlgo = "all"
	// DefaultPiMethod is the default π estimation method.
	DefaultPiMethod = "montecarlo"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the Fibonacci index to calculate to output presentation.
type AppConfig struct {
	// N is the index of the Fibonacci number to be calculated.
	N int
	// Samples is the parameter passed to the π estimators (grid radius for
	// the lattice method, sample count for Monte Carlo).
	Samples int
	// Algo specifies the Fibonacci algorithm to use ("all" or a registered name).
	Algo string
	// PiMethod specifies the π estimator to run when PiMode is set.
	PiMethod string
	// PiMode, if true, runs a π estimation instead of a Fibonacci calculation.
	PiMode bool
	// Demo, if true, runs the demonstration driver: every Fibonacci variant
	// over a small range followed by both π estimators. This is the default
	// mode when no calculation flags are given.
	Demo bool
	// Timeout sets the maximum duration for any calculation.
	Timeout time.Duration
	// Seed seeds the Monte Carlo estimator when non-zero; zero means a
	// time-derived seed (non-reproducible runs).
	Seed int64
	// RecursionLimit overrides the recursive variant's index cap when positive.
	RecursionLimit int
	// Verbose, if true, shows the full result values in the output.
	Verbose bool
	// ShowValue enables the calculated value display when true.
	ShowValue bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses progress bars, banners, and informational messages.
	Quiet bool
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string
	// TUI, if true, launches the interactive dashboard.
	TUI bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen algorithm and estimator are supported.
//
// Parameters:
//   - availableAlgos: The valid Fibonacci algorithm names.
//   - availableEstimators: The valid π estimator names.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos, availableEstimators []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.RecursionLimit < 0 {
		return apperrors.NewConfigError("recursion limit cannot be negative: %d", c.RecursionLimit)
	}
	if c.Algo != "all" && !contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	if !contains(availableEstimators, c.PiMethod) {
		return apperrors.NewConfigError("unrecognized pi estimator: '%s'. Valid estimators are: [%s]",
			c.PiMethod, strings.Join(availableEstimators, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies environment variable overrides for flags not explicitly set, and
// validates the resulting configuration.
//
// The priority order is: CLI flags > environment variables > defaults.
// When none of the calculation flags (-n, -algo, -pi, -samples) are given,
// the demonstration mode is enabled.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errorWriter: The writer for flag parsing errors and usage.
//   - availableAlgos: The valid Fibonacci algorithm names.
//   - availableEstimators: The valid π estimator names.
//
// Returns:
//   - AppConfig: The parsed and validated configuration.
//   - error: A parsing or validation error, or flag.ErrHelp for -help.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos, availableEstimators []string) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	setCustomUsage(fs)

	fs.IntVar(&cfg.N, "n", DefaultN, "index of the Fibonacci number to calculate")
	fs.IntVar(&cfg.Samples, "samples", DefaultSamples, "sample count (or grid radius) for pi estimation")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "Fibonacci algorithm to run, or 'all' to compare")
	fs.StringVar(&cfg.PiMethod, "pi", DefaultPiMethod, "pi estimation method")
	fs.BoolVar(&cfg.PiMode, "estimate-pi", false, "estimate pi instead of calculating Fibonacci numbers")
	fs.BoolVar(&cfg.Demo, "demo", false, "run the full demonstration of every algorithm")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum duration for a calculation")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for Monte Carlo estimation (0 = time-derived)")
	fs.IntVar(&cfg.RecursionLimit, "recursion-limit", 0, "index cap for the recursive variant (0 = default)")
	fs.BoolVar(&cfg.Verbose, "v", false, "display full result values")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "display full result values")
	fs.BoolVar(&cfg.ShowValue, "c", false, "display the calculated value section")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "display the calculated value section")
	fs.BoolVar(&cfg.Quiet, "q", false, "minimal output for scripting")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "minimal output for scripting")
	fs.StringVar(&cfg.OutputFile, "output", "", "save the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "save the result to this file")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	// Demo is the default mode: it stays on unless the user asked for a
	// specific calculation.
	if !cfg.Demo && !isFlagSetAny(fs, "n", "algo", "pi", "estimate-pi", "samples", "tui") {
		cfg.Demo = true
	}
	if isFlagSetAny(fs, "pi", "samples") {
		cfg.PiMode = true
	}

	if err := cfg.Validate(availableAlgos, availableEstimators); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
