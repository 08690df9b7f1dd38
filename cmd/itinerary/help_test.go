package main

// Notes:
// - printUsage/printRenderUsage: we test that required content strings are
//   present in the output. We don't test exact formatting as that's an
//   implementation detail.
// - runHelp: we test routing to the correct help topic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-itinerary/internal/assets"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	for _, cmd := range commands {
		if !strings.Contains(output, "  "+cmd) {
			t.Errorf("printUsage output should list command %q", cmd)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintRenderUsage - Render command usage output
// ---------------------------------------------------------------------------

func TestPrintRenderUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRenderUsage(&buf)
	output := buf.String()

	groups := []string{
		"Input/Output:",
		"Trip:",
		"Page:",
		"Footer:",
		"Day Index:",
		"Styling:",
		"Terminal:",
		"Output Control:",
	}
	for _, group := range groups {
		if !strings.Contains(output, group) {
			t.Errorf("printRenderUsage output should contain group header %q", group)
		}
	}

	for _, name := range assets.StyleNames() {
		if !strings.Contains(output, name) {
			t.Errorf("printRenderUsage output should list style %q", name)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help topic routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{"no topic", nil, ExitSuccess, "Commands:"},
		{"render", []string{"render"}, ExitSuccess, "Usage: itinerary render"},
		{"classify", []string{"classify"}, ExitSuccess, "Usage: itinerary classify"},
		{"suggest", []string{"suggest"}, ExitSuccess, "--interests"},
		{"config", []string{"config"}, ExitSuccess, "Usage: itinerary config"},
		{"version", []string{"version"}, ExitSuccess, "Usage: itinerary version"},
		{"help", []string{"help"}, ExitSuccess, "Usage: itinerary help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(nil)
			if code := runHelp(tt.args, env); code != tt.wantCode {
				t.Errorf("runHelp() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.want)
			}
		})
	}

	t.Run("unknown topic", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv(nil)
		if code := runHelp([]string{"plan"}, env); code != ExitUsage {
			t.Errorf("runHelp() = %d, want %d", code, ExitUsage)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout should be empty, got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "Unknown command: plan") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
