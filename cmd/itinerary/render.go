package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
	"github.com/alnah/go-itinerary/internal/destinations"
	"github.com/alnah/go-itinerary/internal/hints"
	"github.com/alnah/go-itinerary/internal/logutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read itinerary")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrConverterInit      = errors.New("failed to initialize converter")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrStdoutMultiple     = errors.New("cannot write several itineraries to stdout")
)

// stdio is the path that stands for stdin on input and stdout on output.
const stdio = "-"

// suggestionsOnUnknownCity caps the names offered for an unknown city.
const suggestionsOnUnknownCity = 3

// extensions maps output formats to file extensions.
var extensions = map[string]string{
	config.FormatHTML: ".html",
	config.FormatPDF:  ".pdf",
	config.FormatText: itinerary.ExportExtension,
	config.FormatTerm: ".ans",
}

// runRenderCmd parses flags and renders the given itineraries.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	s, err := newSession(&flags.common, env)
	if err != nil {
		return err
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	undo, _ := maxprocs.Set(maxprocs.Logger(logutil.Printf(s.log)))
	defer undo()

	return runRender(ctx, inputs, flags, s, env)
}

// runRender orchestrates the render process.
func runRender(ctx context.Context, inputs []string, flags *renderFlags, s *session, env *Environment) error {
	cfg := s.cfg
	mergeFlags(flags, cfg)

	if err := validateWorkers(cfg.Output.Workers); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !config.IsFormat(cfg.Output.Format) {
		return fmt.Errorf("%w: %q (must be one of %s)", itinerary.ErrInvalidFormat, cfg.Output.Format, strings.Join(config.Formats, ", "))
	}

	timeout, err := resolveTimeout(flags.timeout, s.envCfg.Timeout)
	if err != nil {
		return err
	}

	inputs, err = expandInputs(inputs)
	if err != nil {
		return err
	}
	jobs, err := planJobs(inputs, flags.output, cfg)
	if err != nil {
		return err
	}

	params, err := buildRenderParams(flags, cfg, jobs, env)
	if err != nil {
		return err
	}
	warnUnknownCity(s, params.trip)

	var pool Pool
	if params.needsConverter() {
		size := min(itinerary.ResolvePoolSize(cfg.Output.Workers), len(jobs))
		s.log.Debug().Int("workers", size).Str("format", params.format).Msg("starting converter pool")
		pool = env.NewPool(size, converterOptions(cfg, timeout)...)
		defer func() {
			if err := pool.Close(); err != nil {
				s.log.Warn().Err(err).Msg("closing converter pool")
			}
		}()
	}

	results := renderBatch(ctx, pool, jobs, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d render(s) failed: %w", failed, firstError(results))
	}
	return nil
}

// buildRenderParams bundles everything shared by the jobs of one run.
func buildRenderParams(flags *renderFlags, cfg *config.Config, jobs []renderJob, env *Environment) (*renderParams, error) {
	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}
	footer, err := buildFooterData(cfg)
	if err != nil {
		return nil, err
	}
	toc, err := buildTOCData(cfg)
	if err != nil {
		return nil, err
	}
	css, err := resolveCSSContent(flags.assets.css)
	if err != nil {
		return nil, err
	}

	params := &renderParams{
		format: cfg.Output.Format,
		trip:   buildTrip(cfg),
		css:    css,
		page:   page,
		footer: footer,
		toc:    toc,
		stdin:  env.Stdin,
		stdout: env.Stdout,
		now:    env.Now,
	}

	if params.format == config.FormatTerm {
		toStdout := len(jobs) == 1 && jobs[0].OutputPath == stdio
		params.termOpts, err = buildTermOptions(flags.term, toStdout)
		if err != nil {
			return nil, err
		}
	}
	return params, nil
}

// warnUnknownCity logs a warning with suggestions when the trip city is not
// in the destination catalog. Unknown cities are still rendered.
func warnUnknownCity(s *session, trip *itinerary.Trip) {
	if trip == nil || trip.City == "" {
		return
	}
	if _, ok := destinations.Lookup(trip.City); ok {
		return
	}
	names := destinations.Names(destinations.Suggest(trip.City, suggestionsOnUnknownCity))
	s.log.Warn().Str("city", trip.City).Msg("unknown destination, header has no flag or tagline" + hints.ForUnknownCity(names))
}

// planJobs resolves the output path of every input.
//
// A single input goes to --output when given (a directory receives the
// default name), to stdout for "-" or for the term format, and otherwise to
// the default name in output.dir or beside the input. Several inputs always
// go to files named after each input.
func planJobs(inputs []string, output string, cfg *config.Config) ([]renderJob, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	ext := extensions[cfg.Output.Format]

	if len(inputs) == 1 {
		in := inputs[0]
		switch {
		case output == stdio, output == "" && cfg.Output.Format == config.FormatTerm:
			return []renderJob{{InputPath: in, OutputPath: stdio}}, nil
		case output != "" && !isDirTarget(output):
			return []renderJob{{InputPath: in, OutputPath: output}}, nil
		}

		stem := cfg.Trip.City
		if strings.TrimSpace(stem) == "" {
			stem = inputStem(in)
		}
		dir := output
		if dir == "" {
			dir = defaultOutputDir(in, cfg)
		}
		return []renderJob{{InputPath: in, OutputPath: filepath.Join(dir, itinerary.ExportStem(stem)+ext)}}, nil
	}

	if output == stdio {
		return nil, ErrStdoutMultiple
	}
	jobs := make([]renderJob, 0, len(inputs))
	claimed := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if in == stdio {
			return nil, fmt.Errorf("%w: stdin cannot be combined with other inputs", ErrUsage)
		}
		dir := output
		if dir == "" {
			dir = defaultOutputDir(in, cfg)
		}
		out := filepath.Join(dir, itinerary.ExportStem(inputStem(in))+ext)
		if prev, ok := claimed[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s both render to %s", ErrUsage, prev, in, out)
		}
		claimed[out] = in
		jobs = append(jobs, renderJob{InputPath: in, OutputPath: out})
	}
	return jobs, nil
}

// defaultOutputDir returns output.dir, or the input's directory.
func defaultOutputDir(input string, cfg *config.Config) string {
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	if input == stdio {
		return "."
	}
	return filepath.Dir(input)
}

// isDirTarget reports whether path names a directory: it ends with a
// separator or already exists as a directory.
func isDirTarget(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// inputStem returns the input base name without extension.
func inputStem(path string) string {
	if path == stdio {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// readInput reads an itinerary from path, or from stdin for "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == stdio {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided path
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return data, nil
}

// firstError returns the first failed result's error.
func firstError(results []RenderResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
