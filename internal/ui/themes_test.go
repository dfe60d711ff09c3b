package ui

import (
	"strings"
	"testing"
)

func restoreTheme(t *testing.T) {
	t.Helper()
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })
}

func TestSetTheme(t *testing.T) {
	restoreTheme(t)

	cases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tc := range cases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q): active theme = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	restoreTheme(t)

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
	}
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("no-color theme returned ANSI fragments")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	restoreTheme(t)
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("theme = %q, want none when NO_COLOR is set", GetCurrentTheme().Name)
	}
}

func TestColorAccessors_DarkTheme(t *testing.T) {
	restoreTheme(t)
	SetTheme("dark")

	for name, got := range map[string]string{
		"green":  ColorGreen(),
		"red":    ColorRed(),
		"yellow": ColorYellow(),
		"cyan":   ColorCyan(),
		"bold":   ColorBold(),
		"reset":  ColorReset(),
	} {
		if !strings.HasPrefix(got, "\033[") {
			t.Errorf("%s accessor = %q, want an ANSI escape", name, got)
		}
	}
}

func TestGetCurrentTUITheme_FollowsActiveTheme(t *testing.T) {
	restoreTheme(t)

	SetTheme("none")
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("TUI theme should be colorless when the none theme is active")
	}

	SetTheme("dark")
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("TUI theme should be the dark palette for the dark theme")
	}
}
