package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-itinerary/internal/config"
)

// envPrefix namespaces every variable read by the CLI.
const envPrefix = "ITINERARY_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // ITINERARY_CONFIG: config file name or path
	Style      string        // ITINERARY_STYLE: style name, path, or CSS
	Timeout    time.Duration // ITINERARY_TIMEOUT: PDF generation timeout

	City      string // ITINERARY_CITY: trip destination
	OutputDir string // ITINERARY_OUTPUT_DIR: default output directory
	PageSize  string // ITINERARY_PAGE_SIZE: a4, letter, legal
	AssetPath string // ITINERARY_ASSET_PATH: custom asset directory
	Workers   int    // ITINERARY_WORKERS: parallel workers
}

// knownEnvVars lists valid ITINERARY_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"ITINERARY_CONFIG":     true,
	"ITINERARY_STYLE":      true,
	"ITINERARY_TIMEOUT":    true,
	"ITINERARY_CITY":       true,
	"ITINERARY_OUTPUT_DIR": true,
	"ITINERARY_PAGE_SIZE":  true,
	"ITINERARY_ASSET_PATH": true,
	"ITINERARY_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// Malformed durations and worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("ITINERARY_CONFIG"),
		Style:      getenv("ITINERARY_STYLE"),
		City:       getenv("ITINERARY_CITY"),
		OutputDir:  getenv("ITINERARY_OUTPUT_DIR"),
		PageSize:   getenv("ITINERARY_PAGE_SIZE"),
		AssetPath:  getenv("ITINERARY_ASSET_PATH"),
	}

	if timeout := getenv("ITINERARY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("ITINERARY_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized ITINERARY_*
// variable, e.g. ITINERARY_CITTY.
func warnUnknownEnvVars(log zerolog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.City != "" && cfg.Trip.City == "" {
		cfg.Trip.City = env.City
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 && cfg.Output.Workers == 0 {
		cfg.Output.Workers = env.Workers
	}
}
