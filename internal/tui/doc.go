// Package tui provides a bubbletea dashboard that monitors a comparison run:
// a scrolling event log, an aggregated progress gauge, and live system stats.
package tui
