package itinerary

// BlockKind is the structural category assigned to a single itinerary line.
type BlockKind int

// Block kinds, in no particular precedence order. Classification precedence
// lives in the rule table in classify.go.
const (
	Plain BlockKind = iota
	SectionHeader
	SubHeader
	Bullet
	NumberedItem
	TimeLabel
	Blank
)

var blockKindNames = [...]string{
	Plain:         "plain",
	SectionHeader: "section-header",
	SubHeader:     "sub-header",
	Bullet:        "bullet",
	NumberedItem:  "numbered-item",
	TimeLabel:     "time-label",
	Blank:         "blank",
}

// String returns the kebab-case name of the kind. The names double as CSS
// class names in HTML output.
func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "unknown"
	}
	return blockKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// HasInline reports whether blocks of this kind carry inline emphasis.
// Headings and time labels are emitted as already-stripped labels.
func (k BlockKind) HasInline() bool {
	switch k {
	case Bullet, NumberedItem, Plain:
		return true
	}
	return false
}

// Block is one classified line of an itinerary.
type Block struct {
	Kind    BlockKind `yaml:"kind"`
	Ordinal string    `yaml:"ordinal,omitempty"` // NumberedItem only, digits as written
	Text    string    `yaml:"text"`              // structural marker removed
	Index   int       `yaml:"index"`             // position in output, presentation only
}

// SpanKind tags a run of inline text.
type SpanKind int

// Span kinds.
const (
	Literal SpanKind = iota
	Bold
	Italic
)

// String returns the span kind name.
func (k SpanKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Span is a contiguous run of inline text. Spans never nest or overlap.
type Span struct {
	Kind SpanKind `yaml:"kind"`
	Text string   `yaml:"text"`
}

// RenderedBlock pairs a block with its resolved inline spans.
type RenderedBlock struct {
	Block `yaml:",inline"`
	Spans []Span `yaml:"spans,omitempty"`
}
