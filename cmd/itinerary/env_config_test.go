package main

// Notes:
// - loadEnvConfig: we test every ITINERARY_* variable through an injected
//   getenv. Invalid/negative values for timeout and workers are tested to
//   verify graceful handling (ignored, not errors).
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test priority behavior (env doesn't override config).
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-itinerary/internal/config"
	"github.com/alnah/go-itinerary/internal/logutil"
)

func mapGetenv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapGetenv(map[string]string{
			"ITINERARY_CONFIG":     "/path/to/config.yaml",
			"ITINERARY_STYLE":      "daylight",
			"ITINERARY_TIMEOUT":    "2m",
			"ITINERARY_CITY":       "Kyoto",
			"ITINERARY_OUTPUT_DIR": "/out",
			"ITINERARY_PAGE_SIZE":  "letter",
			"ITINERARY_ASSET_PATH": "/assets",
			"ITINERARY_WORKERS":    "3",
		}))

		if cfg.ConfigPath != "/path/to/config.yaml" {
			t.Errorf("ConfigPath = %q, want /path/to/config.yaml", cfg.ConfigPath)
		}
		if cfg.Style != "daylight" {
			t.Errorf("Style = %q, want daylight", cfg.Style)
		}
		if cfg.Timeout != 2*time.Minute {
			t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
		}
		if cfg.City != "Kyoto" {
			t.Errorf("City = %q, want Kyoto", cfg.City)
		}
		if cfg.OutputDir != "/out" {
			t.Errorf("OutputDir = %q, want /out", cfg.OutputDir)
		}
		if cfg.PageSize != "letter" {
			t.Errorf("PageSize = %q, want letter", cfg.PageSize)
		}
		if cfg.AssetPath != "/assets" {
			t.Errorf("AssetPath = %q, want /assets", cfg.AssetPath)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("invalid numbers are ignored", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			timeout string
			workers string
		}{
			{"soon", "many"},
			{"-5s", "-2"},
			{"0s", "0"},
		}
		for _, tt := range tests {
			cfg := loadEnvConfig(mapGetenv(map[string]string{
				"ITINERARY_TIMEOUT": tt.timeout,
				"ITINERARY_WORKERS": tt.workers,
			}))
			if cfg.Timeout != 0 {
				t.Errorf("timeout %q: Timeout = %v, want 0", tt.timeout, cfg.Timeout)
			}
			if cfg.Workers != 0 {
				t.Errorf("workers %q: Workers = %d, want 0", tt.workers, cfg.Workers)
			}
		}
	})

	t.Run("unset variables are empty", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(mapGetenv(nil))
		if *cfg != (envConfig{}) {
			t.Errorf("loadEnvConfig() = %+v, want zero value", *cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logutil.New(&buf, "warn", logutil.FormatConsole)
	if err != nil {
		t.Fatalf("logutil.New() error = %v", err)
	}

	warnUnknownEnvVars(log, []string{
		"ITINERARY_CITTY=Paris",
		"ITINERARY_CITY=Paris",
		"HOME=/root",
		"ITINERARY_STYLE=midnight",
	})

	out := buf.String()
	if !strings.Contains(out, "ITINERARY_CITTY") {
		t.Errorf("expected warning for ITINERARY_CITTY, got %q", out)
	}
	if strings.Contains(out, "ITINERARY_CITY ") || strings.Contains(out, "ITINERARY_STYLE") {
		t.Errorf("known variables should not warn, got %q", out)
	}
	if strings.Contains(out, "HOME") {
		t.Errorf("unrelated variables should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env overrides only fill empty config values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Style:     "daylight",
		City:      "Rome",
		OutputDir: "/env-out",
		PageSize:  "legal",
		AssetPath: "/env-assets",
		Workers:   4,
	}

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Style.Name != "daylight" {
			t.Errorf("Style.Name = %q, want daylight", cfg.Style.Name)
		}
		if cfg.Trip.City != "Rome" {
			t.Errorf("Trip.City = %q, want Rome", cfg.Trip.City)
		}
		if cfg.Output.Dir != "/env-out" {
			t.Errorf("Output.Dir = %q, want /env-out", cfg.Output.Dir)
		}
		if cfg.Page.Size != "legal" {
			t.Errorf("Page.Size = %q, want legal", cfg.Page.Size)
		}
		if cfg.Assets.BasePath != "/env-assets" {
			t.Errorf("Assets.BasePath = %q, want /env-assets", cfg.Assets.BasePath)
		}
		if cfg.Output.Workers != 4 {
			t.Errorf("Output.Workers = %d, want 4", cfg.Output.Workers)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Style.Name = "midnight"
		cfg.Trip.City = "Paris"
		cfg.Output.Workers = 2
		applyEnvConfig(env, cfg)

		if cfg.Style.Name != "midnight" {
			t.Errorf("Style.Name = %q, want midnight", cfg.Style.Name)
		}
		if cfg.Trip.City != "Paris" {
			t.Errorf("Trip.City = %q, want Paris", cfg.Trip.City)
		}
		if cfg.Output.Workers != 2 {
			t.Errorf("Output.Workers = %d, want 2", cfg.Output.Workers)
		}
	})
}
