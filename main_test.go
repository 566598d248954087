package main

import (
	"io"
	"testing"
)

// Flag registration must not clash with urfave/cli's built-in version and
// help aliases; a collision panics inside Run before any action executes.
func TestApp_FlagRegistration(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"app help", []string{"go-pathtrace", "--help"}},
		{"version", []string{"go-pathtrace", "--version"}},
		{"render help", []string{"go-pathtrace", "render", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()
			app.Writer = io.Discard
			if err := app.Run(tt.args); err != nil {
				t.Errorf("Run(%v) failed: %v", tt.args, err)
			}
		})
	}
}
