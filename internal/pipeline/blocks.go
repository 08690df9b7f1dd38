package pipeline

// Block kind names as produced by itinerary.BlockKind.String().
// They are also the CSS classes attached to rendered elements.
const (
	KindSectionHeader = "section-header"
	KindSubHeader     = "sub-header"
	KindBullet        = "bullet"
	KindNumberedItem  = "numbered-item"
	KindTimeLabel     = "time-label"
	KindPlain         = "plain"
	KindBlank         = "blank"
)

// BlockData is the presentation view of a rendered itinerary block.
type BlockData struct {
	Kind    string
	Ordinal string
	Index   int
	Spans   []SpanData
}

// SpanData is one inline run inside a block.
type SpanData struct {
	Bold   bool
	Italic bool
	Text   string
}

// PlainText concatenates span text, ignoring emphasis.
func (b BlockData) PlainText() string {
	switch len(b.Spans) {
	case 0:
		return ""
	case 1:
		return b.Spans[0].Text
	}
	var n int
	for _, s := range b.Spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range b.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// isHeading reports whether the block renders as an HTML heading.
func (b BlockData) isHeading() bool {
	return b.Kind == KindSectionHeader || b.Kind == KindSubHeader
}

// headingLevel maps heading kinds to HTML levels. Level 1 is reserved for
// the trip header.
func (b BlockData) headingLevel() int {
	if b.Kind == KindSubHeader {
		return 3
	}
	return 2
}
