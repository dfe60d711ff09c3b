package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError reports that a numeric argument passed to one of the
// library operations is outside its valid domain. Every Fibonacci variant and
// both π estimators return this type for a negative index or sample count.
type InvalidArgumentError struct {
	// Param is the name of the offending parameter (usually "n").
	Param string
	// Value is the rejected value.
	Value int64
	// Reason explains the domain violation.
	Reason string
}

// Error returns a formatted message describing the invalid argument.
//
// Returns:
//   - string: The error message string.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%d: %s", e.Param, e.Value, e.Reason)
}

// NewInvalidArgument creates a new InvalidArgumentError.
//
// Parameters:
//   - param: The parameter name.
//   - value: The rejected value.
//   - reason: A human-readable explanation of the violation.
//
// Returns:
//   - error: A new InvalidArgumentError instance.
func NewInvalidArgument(param string, value int64, reason string) error {
	return InvalidArgumentError{Param: param, Value: value, Reason: reason}
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	var iae InvalidArgumentError
	return errors.As(err, &iae)
}

// RangeError reports that a result is not representable by the arithmetic the
// operation is defined over. It is returned by the Binet closed-form variants
// once the golden-ratio power exceeds the float64 range. The input itself is
// valid, which is why this is distinct from InvalidArgumentError.
type RangeError struct {
	// Op is the name of the operation whose result overflowed.
	Op string
	// N is the input index that triggered the overflow.
	N int64
}

// Error returns a formatted message describing the overflow.
//
// Returns:
//   - string: The error message string.
func (e RangeError) Error() string {
	return fmt.Sprintf("%s: result for n=%d exceeds the float64 range", e.Op, e.N)
}

// CalculationError encapsulates a calculation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during a calculation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CalculationError.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the ANSI color fragments used when reporting errors
// to a terminal. The CLI passes its theme-backed implementation; tests pass a
// colorless one.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// noColors is the fallback used when no provider is supplied.
type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// HandleCalculationError prints a human-readable diagnosis of a failed
// calculation and maps the error to the appropriate process exit code.
//
// Parameters:
//   - err: The calculation error.
//   - duration: How long the calculation ran before failing.
//   - out: The writer for the diagnosis message.
//   - colors: The color provider for terminal output.
//
// Returns:
//   - int: The exit code corresponding to the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if colors == nil {
		colors = noColors{}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sCalculation timed out after %s.%s\n", colors.Red(), duration, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCalculation canceled after %s.%s\n", colors.Yellow(), duration, colors.Reset())
		return ExitErrorCanceled
	case IsInvalidArgument(err):
		fmt.Fprintf(out, "%sInvalid argument: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "%sCalculation failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
