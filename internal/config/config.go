// Package config loads the itinerary CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-itinerary/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "itinerary"

// Field length limits.
const (
	MaxCityLength        = 100
	MaxInterests         = 20
	MaxInterestLength    = 50
	MaxPathLength        = 4096
	MaxStyleLength       = 4096 // name, path, or inline CSS snippet
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxTextLength        = 500  // footer text
	MaxTOCTitleLength    = 100
)

// Output formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatTerm = "term"
	FormatText = "text"
)

// Formats lists the supported output formats.
var Formats = []string{FormatHTML, FormatPDF, FormatTerm, FormatText}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds all configuration for itinerary rendering.
type Config struct {
	Trip   TripConfig   `yaml:"trip"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Page   PageConfig   `yaml:"page"`
	Footer FooterConfig `yaml:"footer"`
	TOC    TOCConfig    `yaml:"toc"`
	Log    LogConfig    `yaml:"log"`
	Assets AssetsConfig `yaml:"assets"`
}

// TripConfig describes the trip shown in the header card.
type TripConfig struct {
	City      string   `yaml:"city"`
	Interests []string `yaml:"interests"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // empty = next to the input
	Format  string `yaml:"format"`  // html, pdf, term, text (default: html)
	Workers int    `yaml:"workers"` // 0 = auto
}

// StyleConfig selects the stylesheet.
type StyleConfig struct {
	Name string `yaml:"name"` // built-in name, CSS file path, or inline CSS
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// FooterConfig defines the PDF footer.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right"
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Text           string `yaml:"text"`
}

// TOCConfig defines the day index.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`
	MaxDepth int    `yaml:"maxDepth"` // 2 or 3, default 3
}

// LogConfig defines logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name (default: "info")
	Format string `yaml:"format"` // "console" or "json"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatHTML},
		Log:    LogConfig{Level: "info", Format: LogFormatConsole},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("trip.city", c.Trip.City, MaxCityLength); err != nil {
		return err
	}
	if len(c.Trip.Interests) > MaxInterests {
		return fmt.Errorf("%w: trip.interests has %d entries (max %d)", ErrInvalidValue, len(c.Trip.Interests), MaxInterests)
	}
	for i, tag := range c.Trip.Interests {
		if err := validateFieldLength(fmt.Sprintf("trip.interests[%d]", i), tag, MaxInterestLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.Format != "" && !IsFormat(c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (must be one of %s)", ErrInvalidValue, c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Output.Workers < 0 {
		return fmt.Errorf("%w: output.workers must not be negative, got %d", ErrInvalidValue, c.Output.Workers)
	}

	if err := validateFieldLength("style.name", c.Style.Name, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	switch strings.ToLower(c.Footer.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("%w: footer.position %q (must be left, center, or right)", ErrInvalidValue, c.Footer.Position)
	}

	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if c.TOC.MaxDepth != 0 && (c.TOC.MaxDepth < 2 || c.TOC.MaxDepth > 3) {
		return fmt.Errorf("%w: toc.maxDepth must be 2 or 3, got %d", ErrInvalidValue, c.TOC.MaxDepth)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
	}

	return nil
}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// validateFieldLength checks a field against its maximum length in characters.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in SearchPaths order.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// SearchPaths lists the candidate files for a config name.
// Tries extensions .yaml then .yml, first in the current directory and then
// in the user config directory (~/.config/itinerary/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}
