package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Restart", km.Restart},
		{"Up", km.Up},
		{"Down", km.Down},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	hasQ := false
	hasCtrlC := false
	for _, k := range km.Quit.Keys() {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}

	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}
