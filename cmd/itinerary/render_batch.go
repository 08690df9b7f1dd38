package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
	"github.com/alnah/go-itinerary/internal/fileutil"
	"github.com/alnah/go-itinerary/internal/terminal"
)

// renderJob is a single itinerary to render.
type renderJob struct {
	InputPath  string
	OutputPath string // "-" = stdout
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	format   string
	trip     *itinerary.Trip
	css      string
	page     *itinerary.PageSettings
	footer   *itinerary.Footer
	toc      *itinerary.TOC
	termOpts []terminal.Option
	stdin    io.Reader
	stdout   io.Writer
	now      func() time.Time
}

// needsConverter reports whether the format goes through the HTML pipeline.
func (p *renderParams) needsConverter() bool {
	return p.format == config.FormatHTML || p.format == config.FormatPDF
}

// renderBatch processes jobs concurrently using the converter pool.
// Formats that need no converter run sequentially and pool may be nil.
func renderBatch(ctx context.Context, pool Pool, jobs []renderJob, params *renderParams) []RenderResult {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]RenderResult, len(jobs))

	if !params.needsConverter() {
		for i, job := range jobs {
			if ctx.Err() != nil {
				results[i] = RenderResult{InputPath: job.InputPath, Err: ctx.Err()}
				continue
			}
			results[i] = renderFile(ctx, nil, job, params)
		}
		return results
	}

	concurrency := min(pool.Size(), len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				// Converter creation failed, mark remaining jobs as failed
				err := converterInitError(pool)
				for idx := range queue {
					results[idx] = RenderResult{InputPath: jobs[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: jobs[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, conv, jobs[idx], params)
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// converterInitError wraps the pool's creation error when it exposes one.
func converterInitError(pool Pool) error {
	if p, ok := pool.(interface{ InitError() error }); ok {
		if cause := p.InitError(); cause != nil {
			return fmt.Errorf("%w: %w", ErrConverterInit, cause)
		}
	}
	return ErrConverterInit
}

// renderFile processes a single job and returns the result.
func renderFile(ctx context.Context, conv CLIConverter, job renderJob, params *renderParams) RenderResult {
	start := params.now()
	result := RenderResult{
		InputPath:  job.InputPath,
		OutputPath: job.OutputPath,
	}
	finish := func(err error) RenderResult {
		result.Err = err
		result.Duration = params.now().Sub(start)
		return result
	}

	content, err := readInput(job.InputPath, params.stdin)
	if err != nil {
		return finish(err)
	}
	text := string(content)
	if strings.TrimSpace(text) == "" {
		return finish(itinerary.ErrEmptyItinerary)
	}

	data, err := renderOutput(ctx, conv, text, job, params)
	if err != nil {
		return finish(err)
	}

	if job.OutputPath == stdio {
		if _, err := params.stdout.Write(data); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return finish(nil)
	}
	if err := fileutil.WriteOutput(job.OutputPath, data); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	return finish(nil)
}

// renderOutput produces the bytes for the configured format.
func renderOutput(ctx context.Context, conv CLIConverter, text string, job renderJob, params *renderParams) ([]byte, error) {
	switch params.format {
	case config.FormatText:
		return itinerary.Export(text), nil

	case config.FormatTerm:
		w := io.Discard
		if job.OutputPath == stdio {
			w = params.stdout
		}
		r := terminal.New(w, params.termOpts...)
		return []byte(r.Render(buildTermHeader(params.trip), itinerary.Render(text))), nil
	}

	res, err := conv.Convert(ctx, itinerary.Input{
		Text:     text,
		Trip:     params.trip,
		CSS:      params.css,
		TOC:      params.toc,
		Page:     params.page,
		Footer:   params.footer,
		HTMLOnly: params.format == config.FormatHTML,
	})
	if err != nil {
		return nil, err
	}
	if params.format == config.FormatHTML {
		return res.HTML, nil
	}
	return res.PDF, nil
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs render results and returns the failure count.
// Results written to stdout are not reported there again; status lines go
// to stderr in that case.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	status := env.Stdout
	for _, r := range results {
		if r.OutputPath == stdio {
			status = env.Stderr
		}
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet || r.OutputPath == stdio && !verbose {
			continue
		}

		if verbose {
			fmt.Fprintf(status, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(status, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(status, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
