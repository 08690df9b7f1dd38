package main

import (
	"context"
	"fmt"

	itinerary "github.com/alnah/go-itinerary"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input itinerary.Input) (*itinerary.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*itinerary.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes an itinerary.ConverterPool as a Pool.
type poolAdapter struct {
	pool *itinerary.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// Acquire returns nil when the pool could not create a converter, so the
// caller sees a nil interface rather than a typed nil.
func (a *poolAdapter) Acquire() CLIConverter {
	conv := a.pool.Acquire()
	if conv == nil {
		return nil
	}
	return conv
}

// Release panics if c did not come from this adapter.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*itinerary.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}

// InitError reports why Acquire returned nil, if it did.
func (a *poolAdapter) InitError() error {
	return a.pool.InitError()
}
