package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snake-glide/internal/platform/tui"
	"github.com/vovakirdan/snake-glide/internal/platform/window"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

func TestFrontendsRegistered(t *testing.T) {
	for _, id := range []string{tui.FrontendID, window.FrontendID} {
		if !registry.Exists(id) {
			t.Errorf("frontend %q is not registered", id)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/.glide/glide.log", filepath.Join(home, ".glide", "glide.log")},
		{"/tmp/glide.log", "/tmp/glide.log"},
		{"relative.log", "relative.log"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{59 * time.Second, "0:59"},
		{61 * time.Second, "1:01"},
		{10*time.Minute + 5*time.Second, "10:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}

func TestSubcommandsWired(t *testing.T) {
	want := []string{"list", "play", "menu", "serve", "scores", "config"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not found", name)
		}
	}
}
