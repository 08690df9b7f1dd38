package itinerary

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-itinerary/internal/destinations"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// Trip field limits.
const (
	MaxCityLength     = 100
	MaxInterests      = destinations.MaxInterests
	MaxInterestLength = destinations.MaxInterestLength
)

// TOC depth bounds. Depth 2 lists days only, 3 adds sub-sections.
const (
	MinTOCDepth     = 2
	MaxTOCDepth     = 3
	DefaultTOCDepth = 3
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Trip describes the destination and interests an itinerary was planned for.
// It drives the header card and the download file name; it never affects
// how the itinerary text is classified.
type Trip struct {
	City      string
	Interests []string
}

// Validate checks trip field limits.
// Returns nil if t is nil (nil means no header).
func (t *Trip) Validate() error {
	if t == nil {
		return nil
	}
	if n := utf8.RuneCountInString(t.City); n > MaxCityLength {
		return fmt.Errorf("%w: city has %d characters (max %d)", ErrFieldTooLong, n, MaxCityLength)
	}
	if len(t.Interests) > MaxInterests {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyInterests, len(t.Interests), MaxInterests)
	}
	for _, tag := range t.Interests {
		if n := utf8.RuneCountInString(tag); n > MaxInterestLength {
			return fmt.Errorf("%w: interest %q has %d characters (max %d)", ErrFieldTooLong, tag, n, MaxInterestLength)
		}
	}
	return nil
}

// Title returns the document title for the trip.
func (t *Trip) Title() string {
	if t == nil || strings.TrimSpace(t.City) == "" {
		return ""
	}
	return strings.TrimSpace(t.City) + " Itinerary"
}

// TOC configures the day index placed above the itinerary.
type TOC struct {
	Title    string // heading above the list; empty for none
	MaxDepth int    // 2 = days only, 3 = days and sub-sections; 0 = default
}

// Validate checks TOC depth. Returns nil if t is nil (nil means no TOC).
func (t *TOC) Validate() error {
	if t == nil || t.MaxDepth == 0 {
		return nil
	}
	if t.MaxDepth < MinTOCDepth || t.MaxDepth > MaxTOCDepth {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidTOCDepth, t.MaxDepth, MinTOCDepth, MaxTOCDepth)
	}
	return nil
}

// Footer configures the PDF footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Input contains conversion parameters.
type Input struct {
	Text     string        // itinerary text (required)
	Trip     *Trip         // trip header (optional)
	CSS      string        // extra CSS appended after the style (optional)
	TOC      *TOC          // day index (optional)
	Page     *PageSettings // page settings (optional, nil = defaults)
	Footer   *Footer       // PDF footer (optional)
	HTMLOnly bool          // skip PDF generation
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Blocks []RenderedBlock
	HTML   []byte
	PDF    []byte // nil when Input.HTMLOnly is set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout    time.Duration
	styleInput string
	assetPath  string
	style      string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("itinerary: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet. The value may be a built-in style name,
// a path to a CSS file, or raw CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath overrides built-in styles and templates with files from dir.
// Missing files fall back to the embedded assets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}
