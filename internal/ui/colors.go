package ui

// Color accessor helpers. Each returns the escape sequence of the current
// theme for a color category, or the empty string when colors are disabled.
// They exist so call sites read `ui.ColorGreen()` instead of threading the
// theme through every function.

// ColorGreen returns the success color of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color of the active theme.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the secondary color of the active theme.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorMagenta returns the info color of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorBold returns the bold escape of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
