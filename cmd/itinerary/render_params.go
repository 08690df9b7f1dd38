package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
	"github.com/alnah/go-itinerary/internal/destinations"
	"github.com/alnah/go-itinerary/internal/terminal"
)

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.format != "" {
		cfg.Output.Format = strings.ToLower(flags.format)
	}
	if flags.workers != 0 {
		cfg.Output.Workers = flags.workers
	}

	// Trip
	if flags.trip.city != "" {
		cfg.Trip.City = flags.trip.city
	}
	interests := destinations.NormalizeInterests(cfg.Trip.Interests)
	for _, tag := range flags.trip.interests {
		interests = interests.Add(tag)
	}
	for _, tag := range flags.trip.toggle {
		if tag = strings.TrimSpace(tag); tag != "" {
			interests = interests.Toggle(tag)
		}
	}
	cfg.Trip.Interests = interests

	// Page settings
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	// Footer (any footer flag enables it)
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
		cfg.Footer.Enabled = true
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
		cfg.Footer.Enabled = true
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}
	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	}

	// Day index (any index flag enables it)
	if flags.toc.enabled {
		cfg.TOC.Enabled = true
	}
	if flags.toc.title != "" {
		cfg.TOC.Title = flags.toc.title
		cfg.TOC.Enabled = true
	}
	if flags.toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = flags.toc.maxDepth
		cfg.TOC.Enabled = true
	}
	if flags.toc.disabled {
		cfg.TOC.Enabled = false
	}

	// Assets
	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// buildTrip returns the trip for the header card, or nil when the config
// names neither a city nor interests.
func buildTrip(cfg *config.Config) *itinerary.Trip {
	city := strings.TrimSpace(cfg.Trip.City)
	if city == "" && len(cfg.Trip.Interests) == 0 {
		return nil
	}
	return &itinerary.Trip{
		City:      city,
		Interests: cfg.Trip.Interests,
	}
}

// buildPageSettings starts from the defaults and applies configured values.
func buildPageSettings(cfg *config.Config) (*itinerary.PageSettings, error) {
	ps := itinerary.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = strings.ToLower(cfg.Page.Orientation)
	}
	if cfg.Page.Margin > 0 {
		ps.Margin = cfg.Page.Margin
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildFooterData returns the PDF footer, or nil when disabled.
func buildFooterData(cfg *config.Config) (*itinerary.Footer, error) {
	if !cfg.Footer.Enabled {
		return nil, nil
	}
	f := &itinerary.Footer{
		Position:       strings.ToLower(cfg.Footer.Position),
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Text:           cfg.Footer.Text,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// buildTOCData returns the day index settings, or nil when disabled.
func buildTOCData(cfg *config.Config) (*itinerary.TOC, error) {
	if !cfg.TOC.Enabled {
		return nil, nil
	}
	t := &itinerary.TOC{
		Title:    cfg.TOC.Title,
		MaxDepth: cfg.TOC.MaxDepth,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// buildTermHeader resolves the terminal header for trip. Known cities get
// their canonical name, flag, and tagline.
func buildTermHeader(trip *itinerary.Trip) *terminal.Header {
	if trip == nil || trip.City == "" {
		return nil
	}
	h := &terminal.Header{
		City:      trip.City,
		Interests: destinations.NormalizeInterests(trip.Interests),
	}
	if d, ok := destinations.Lookup(trip.City); ok {
		h.City = d.Name
		h.Flag = d.Flag
		h.Tagline = d.Tagline
	}
	return h
}

// buildTermOptions maps terminal flags to renderer options. Colors are
// only auto-detected when writing to stdout.
func buildTermOptions(f termFlags, toStdout bool) ([]terminal.Option, error) {
	var opts []terminal.Option
	if f.width != 0 {
		opts = append(opts, terminal.WithWidth(f.width))
	}

	switch strings.ToLower(f.color) {
	case "", colorAuto:
		if !toStdout {
			opts = append(opts, terminal.WithColor(false))
		}
	case colorAlways:
		opts = append(opts, terminal.WithColor(true))
	case colorNever:
		opts = append(opts, terminal.WithColor(false))
	default:
		return nil, fmt.Errorf("%w: --color %q (must be auto, always, or never)", ErrUsage, f.color)
	}
	return opts, nil
}

// converterOptions builds the converter options from config and timeout.
func converterOptions(cfg *config.Config, timeout time.Duration) []itinerary.Option {
	var opts []itinerary.Option
	if cfg.Style.Name != "" {
		opts = append(opts, itinerary.WithStyle(cfg.Style.Name))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, itinerary.WithAssetPath(cfg.Assets.BasePath))
	}
	if timeout > 0 {
		opts = append(opts, itinerary.WithTimeout(timeout))
	}
	return opts
}

// resolveCSSContent reads the extra CSS file, if any.
func resolveCSSContent(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(data), nil
}

// resolveTimeout determines the PDF timeout.
// Priority: --timeout flag > ITINERARY_TIMEOUT > converter default (0).
func resolveTimeout(flagValue string, envTimeout time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return envTimeout, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > itinerary.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, itinerary.MaxPoolSize)
	}
	return nil
}
