// Package cli implements the terminal presentation layer: result formatting,
// the comparison table, and the spinner-driven progress display.
package cli
