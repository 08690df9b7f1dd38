package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment, converter, and pool doubles
// ---------------------------------------------------------------------------

const testItinerary = `## Day 1: Arrival
**Morning**
- Check in near the **Louvre**
1. Walk along the *Seine*
`

// testEnv returns an environment with buffered I/O and the given variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	var environ []string
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	env := &Environment{
		Now:     time.Now,
		Stdin:   strings.NewReader(""),
		Stdout:  stdout,
		Stderr:  stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
		Config:  config.DefaultConfig(),
		NewPool: func(size int, _ ...itinerary.Option) Pool { return newMockPool(size) },
	}
	return env, stdout, stderr
}

// writeInput writes content to name under a temp dir and returns the path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

// mockConverter echoes the itinerary text into fake HTML and PDF.
type mockConverter struct {
	mu     sync.Mutex
	inputs []itinerary.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input itinerary.Input) (*itinerary.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := &itinerary.ConvertResult{HTML: []byte("<html>" + input.Text + "</html>")}
	if !input.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 mock")
	}
	return res, nil
}

// mockPool hands out a single shared mockConverter.
type mockPool struct {
	size     int
	conv     *mockConverter
	failInit bool
	closed   int
}

func newMockPool(size int) *mockPool {
	return &mockPool{size: size, conv: &mockConverter{}}
}

func (p *mockPool) Acquire() CLIConverter {
	if p.failInit {
		return nil
	}
	return p.conv
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.closed++
	return nil
}

// testParams returns render params writing to buffers.
func testParams(format string) (*renderParams, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &renderParams{
		format: format,
		stdin:  strings.NewReader(""),
		stdout: stdout,
		now:    time.Now,
	}, stdout
}
