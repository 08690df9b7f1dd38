package main

import (
	"io"
	"os"
	"time"

	itinerary "github.com/alnah/go-itinerary"
	"github.com/alnah/go-itinerary/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and configuration.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	Config  *config.Config // replaced once the command has loaded its config
	NewPool func(size int, opts ...itinerary.Option) Pool
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		Config:  config.DefaultConfig(),
		NewPool: newConverterPool,
	}
}

// newConverterPool creates a browser-backed converter pool.
func newConverterPool(size int, opts ...itinerary.Option) Pool {
	return &poolAdapter{pool: itinerary.NewConverterPool(size, opts...)}
}
