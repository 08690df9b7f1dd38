// Package itinerary classifies free-form travel itinerary text and renders
// it for display.
//
// # Classification
//
// Itinerary text is a line-oriented, loosely Markdown-flavoured document.
// Classify assigns each line one BlockKind using an ordered rule table:
//
//	### Evening            sub-header
//	## Day 1: Old Town     section header
//	- Walk the river       bullet (-, * or •)
//	3) Visit the tower     numbered item, ordinal "3"
//	**Morning (9:00 AM)**  time label
//	anything else          plain
//
// Whitespace-only lines become Blank blocks, with runs of them collapsed to
// one. Classification never fails and never reorders lines.
//
// # Inline Emphasis
//
// RenderInline turns **bold** and *italic* markers into typed spans. Render
// combines both steps:
//
//	for _, b := range itinerary.Render(text) {
//	    fmt.Println(b.Kind, b.Spans)
//	}
//
// # Export
//
// Export returns the original document bytes unchanged; it never rebuilds
// text from blocks. ExportFilename names the download "<city>_itinerary.txt".
//
// # HTML and PDF
//
// Converter renders the classified blocks to a styled HTML page and prints
// it to PDF with headless Chrome (go-rod):
//
//	conv, err := itinerary.NewConverter(itinerary.WithStyle("daylight"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, itinerary.Input{
//	    Text: text,
//	    Trip: &itinerary.Trip{City: "Kyoto", Interests: []string{"food"}},
//	    TOC:  &itinerary.TOC{Title: "Days"},
//	})
//
// Set Input.HTMLOnly to skip the browser. For batch jobs, ConverterPool
// hands out one converter (and browser) per worker.
package itinerary
