package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Color modes for terminal output.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// tripFlags holds the destination shown in the header card.
type tripFlags struct {
	city      string
	interests []string
	toggle    []string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	pageNumber bool
	disabled   bool
}

// tocFlags holds day index flags.
type tocFlags struct {
	enabled  bool
	title    string
	maxDepth int
	disabled bool
}

// assetFlags holds asset-related flags (CSS, custom asset path).
type assetFlags struct {
	style     string // name, path, or inline CSS
	css       string // extra CSS file appended after the style
	assetPath string // override asset directory
}

// termFlags holds terminal output flags.
type termFlags struct {
	width int
	color string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	output  string
	format  string
	workers int
	timeout string
	trip    tripFlags
	page    pageFlags
	footer  footerFlags
	toc     tocFlags
	assets  assetFlags
	term    termFlags
}

// suggestFlags holds flags for the suggest command.
type suggestFlags struct {
	common    commonFlags
	limit     int
	interests bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json")
}

// addTripFlags adds trip flags to a FlagSet.
func addTripFlags(fs *flag.FlagSet, f *tripFlags) {
	fs.StringVar(&f.city, "city", "", "destination city")
	fs.StringArrayVarP(&f.interests, "interest", "i", nil, "interest tag (repeatable)")
	fs.StringArrayVar(&f.toggle, "toggle-interest", nil, "add a tag, or remove it if already set (repeatable)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addTOCFlags adds day index flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "add a day index above the itinerary")
	fs.StringVar(&f.title, "toc-title", "", "day index heading")
	fs.IntVar(&f.maxDepth, "toc-depth", 0, "index depth: 2 = days, 3 = days and sections")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable day index")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or inline CSS")
	fs.StringVar(&f.css, "css", "", "extra CSS file applied after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addTermFlags adds terminal output flags to a FlagSet.
func addTermFlags(fs *flag.FlagSet, f *termFlags) {
	fs.IntVar(&f.width, "width", 0, "terminal wrap width (0 = 80)")
	fs.StringVar(&f.color, "color", colorAuto, "terminal colors: auto, always, never")
}

// newRenderFlagSet builds the render flag set bound to f.
// Shared by render and config so both accept the same overrides.
func newRenderFlagSet(name string, f *renderFlags, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- = stdout)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, pdf, term, text")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addTripFlags(fs, &f.trip)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addTOCFlags(fs, &f.toc)
	addAssetFlags(fs, &f.assets)
	addTermFlags(fs, &f.term)

	fs.Usage = func() { usage(w) }
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet("render", f, printRenderUsage, w)
	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags. It accepts every render
// flag so the printed config reflects the same overrides.
func parseConfigFlags(args []string, w io.Writer) (*renderFlags, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet("config", f, printConfigUsage, w)
	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

// parseClassifyFlags parses classify command flags and returns positional args.
func parseClassifyFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(w)
	addCommonFlags(fs, f)
	fs.Usage = func() { printClassifyUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parseSuggestFlags parses suggest command flags and returns positional args.
func parseSuggestFlags(args []string, w io.Writer) (*suggestFlags, []string, error) {
	f := &suggestFlags{}
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	fs.SetOutput(w)
	addCommonFlags(fs, &f.common)
	fs.IntVarP(&f.limit, "limit", "n", 0, "maximum suggestions (0 = default)")
	fs.BoolVar(&f.interests, "interests", false, "list interest presets instead of destinations")
	fs.Usage = func() { printSuggestUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// usageError wraps a flag parse error so it maps to the usage exit code.
// flag.ErrHelp passes through untouched.
func usageError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
