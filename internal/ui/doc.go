// Package ui manages terminal color themes for the numlab CLI and TUI.
// Themes respect the NO_COLOR convention (https://no-color.org/) and can be
// switched at runtime; all accessors are safe for concurrent use.
package ui
