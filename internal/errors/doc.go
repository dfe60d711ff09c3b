// Package apperrors defines the error types and exit codes shared across the
// numlab application. It centralizes error classification so that the CLI,
// the TUI and the library packages agree on what constitutes an invalid
// argument, a configuration problem, a timeout or a cancellation.
package apperrors
