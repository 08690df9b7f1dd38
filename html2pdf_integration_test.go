//go:build integration

package itinerary

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// integrationTimeout bounds browser startup and rendering.
const integrationTimeout = 60 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

// TestConvert_PDF_Integration renders a full itinerary in headless Chrome.
// Rod downloads Chromium on first run if ROD_BROWSER_BIN is not set.
func TestConvert_PDF_Integration(t *testing.T) {
	conv, err := NewConverter(WithTimeout(integrationTimeout))
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	defer conv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout)
	defer cancel()

	tests := []struct {
		name  string
		input Input
	}{
		{
			name:  "plain itinerary",
			input: Input{Text: sampleItinerary},
		},
		{
			name: "header, toc and footer on a4 landscape",
			input: Input{
				Text:   sampleItinerary,
				Trip:   &Trip{City: "Kyoto", Interests: []string{"food", "history"}},
				TOC:    &TOC{Title: "Days"},
				Page:   &PageSettings{Size: PageSizeA4, Orientation: OrientationLandscape, Margin: 0.75},
				Footer: &Footer{ShowPageNumber: true, Text: "Kyoto"},
			},
		},
	}

	// Subtests share one browser, so they run sequentially.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := conv.Convert(ctx, tt.input)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			assertValidPDF(t, result.PDF)
		})
	}
}

func TestConverterPool_Integration(t *testing.T) {
	pool := NewConverterPool(2, WithTimeout(integrationTimeout))
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout)
	defer cancel()

	conv := pool.Acquire()
	if conv == nil {
		t.Fatalf("Acquire() failed: %v", pool.InitError())
	}
	defer pool.Release(conv)

	result, err := conv.Convert(ctx, Input{Text: "## Day 1\n- Arrive"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	assertValidPDF(t, result.PDF)
}
