package itinerary

import "strings"

const (
	boldMarker   = "**"
	italicMarker = '*'
)

// RenderInline resolves emphasis markers in text into typed spans.
//
// Two passes run left to right. The first turns each shortest **x** into a
// Bold span. The second runs over the remaining literal text and turns each
// shortest *x*, with x free of asterisks and newlines, into an Italic span.
// Markers that do not pair up stay literal. An empty pair (****) yields a
// Bold span with empty text, which presentation layers skip.
func RenderInline(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	for _, s := range splitBold(text) {
		if s.Kind != Literal {
			spans = appendSpan(spans, s)
			continue
		}
		for _, is := range splitItalic(s.Text) {
			spans = appendSpan(spans, is)
		}
	}
	return spans
}

// splitBold runs the first pass.
func splitBold(text string) []Span {
	var spans []Span
	litStart := 0
	i := 0
	for i+len(boldMarker) <= len(text) {
		if !strings.HasPrefix(text[i:], boldMarker) {
			i++
			continue
		}
		contentStart := i + len(boldMarker)
		end := strings.Index(text[contentStart:], boldMarker)
		if end < 0 {
			break
		}
		content := text[contentStart : contentStart+end]
		if strings.ContainsRune(content, '\n') {
			i++
			continue
		}
		spans = append(spans,
			Span{Kind: Literal, Text: text[litStart:i]},
			Span{Kind: Bold, Text: content},
		)
		i = contentStart + end + len(boldMarker)
		litStart = i
	}
	return append(spans, Span{Kind: Literal, Text: text[litStart:]})
}

// splitItalic runs the second pass over a literal run.
func splitItalic(text string) []Span {
	var spans []Span
	litStart := 0
	i := 0
	for i < len(text) {
		if text[i] != italicMarker {
			i++
			continue
		}
		end := strings.IndexAny(text[i+1:], "*\n")
		if end <= 0 || text[i+1+end] != italicMarker {
			i++
			continue
		}
		spans = append(spans,
			Span{Kind: Literal, Text: text[litStart:i]},
			Span{Kind: Italic, Text: text[i+1 : i+1+end]},
		)
		i += end + 2
		litStart = i
	}
	return append(spans, Span{Kind: Literal, Text: text[litStart:]})
}

// appendSpan drops empty literals and merges adjacent literal runs.
func appendSpan(spans []Span, s Span) []Span {
	if s.Kind == Literal {
		if s.Text == "" {
			return spans
		}
		if n := len(spans); n > 0 && spans[n-1].Kind == Literal {
			spans[n-1].Text += s.Text
			return spans
		}
	}
	return append(spans, s)
}

// Render classifies raw text and resolves inline emphasis for every block
// kind that carries it. Other non-blank blocks get a single literal span.
func Render(raw string) []RenderedBlock {
	blocks := Classify(raw)
	out := make([]RenderedBlock, len(blocks))
	for i, b := range blocks {
		out[i] = RenderedBlock{Block: b, Spans: spansFor(b)}
	}
	return out
}

// spansFor returns the inline spans for a single block.
func spansFor(b Block) []Span {
	switch {
	case b.Kind == Blank:
		return nil
	case b.Kind.HasInline():
		return RenderInline(b.Text)
	case b.Text == "":
		return nil
	default:
		return []Span{{Kind: Literal, Text: b.Text}}
	}
}
