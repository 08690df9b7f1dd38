// Package pipeline implements the blocks-to-HTML presentation pipeline.
//
// This package handles the HTML stages that follow classification:
//   - Block to HTML mapping via a goldmark AST (one element per block)
//   - CSS injection into HTML documents
//   - Trip header injection (city, tagline, interest badges)
//   - Table of contents generation from day and sub-section headings
//
// Classification and inline emphasis are done by the root itinerary
// package; the pipeline receives plain BlockData values and never re-parses
// text. PDF generation is handled separately by the root package using
// headless Chrome (go-rod).
package pipeline
