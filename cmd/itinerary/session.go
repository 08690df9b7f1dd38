package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-itinerary/internal/config"
	"github.com/alnah/go-itinerary/internal/fileutil"
	"github.com/alnah/go-itinerary/internal/hints"
	"github.com/alnah/go-itinerary/internal/logutil"
)

// Log levels selected by --quiet and --verbose.
const (
	quietLogLevel   = "error"
	verboseLogLevel = "debug"
)

// session is the per-command state shared after flag parsing:
// the effective config, environment overrides, and logger.
type session struct {
	cfg    *config.Config
	envCfg *envConfig
	log    zerolog.Logger
}

// newSession loads configuration and builds the logger.
// Priority: CLI flags > env vars > config file > defaults.
func newSession(common *commonFlags, env *Environment) (*session, error) {
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(common.config, envCfg)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	applyLogFlags(common, cfg)

	log, err := logutil.New(env.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	warnUnknownEnvVars(log, env.Environ())

	env.Config = cfg
	return &session{cfg: cfg, envCfg: envCfg, log: log}, nil
}

// loadConfig resolves the config file: --config, then ITINERARY_CONFIG.
// Without either, defaults are used.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		var hint string
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// applyLogFlags applies logging flags. An explicit --log-level wins over
// --verbose, which wins over --quiet.
func applyLogFlags(f *commonFlags, cfg *config.Config) {
	switch {
	case f.logLevel != "":
		cfg.Log.Level = strings.ToLower(f.logLevel)
	case f.verbose:
		cfg.Log.Level = verboseLogLevel
	case f.quiet:
		cfg.Log.Level = quietLogLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = strings.ToLower(f.logFormat)
	}
}
