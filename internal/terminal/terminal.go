// Package terminal renders classified itineraries as styled terminal text.
package terminal

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	itinerary "github.com/alnah/go-itinerary"
)

// Glyphs drawn in front of list blocks.
const (
	bulletGlyph = "◆"
	ruleGlyph   = "─"
)

// defaultWidth is used when no width is configured.
const defaultWidth = 80

// Header is the trip summary printed above the itinerary.
type Header struct {
	City      string
	Flag      string
	Tagline   string
	Interests []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the wrap width in cells. Values below 20 are ignored.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 20 {
			r.width = width
		}
	}
}

// WithColor forces color output on or off. By default the profile is
// detected from the output writer.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		if enabled {
			r.lg.SetColorProfile(termenv.ANSI256)
		} else {
			r.lg.SetColorProfile(termenv.Ascii)
		}
	}
}

// styles holds one lipgloss style per presentation role.
type styles struct {
	section   lipgloss.Style
	rule      lipgloss.Style
	sub       lipgloss.Style
	bullet    lipgloss.Style
	ordinal   lipgloss.Style
	timeLabel lipgloss.Style
	plain     lipgloss.Style
	body      lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	city      lipgloss.Style
	tagline   lipgloss.Style
	badge     lipgloss.Style
}

// Renderer writes itineraries with per-kind styling.
type Renderer struct {
	lg     *lipgloss.Renderer
	width  int
	styles styles
}

// New creates a Renderer whose color profile matches w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:    lipgloss.NewRenderer(w),
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.styles = newStyles(r.lg)
	return r
}

func newStyles(lg *lipgloss.Renderer) styles {
	accent := lipgloss.Color("75")  // sky blue
	amber := lipgloss.Color("214")  // time labels
	muted := lipgloss.Color("250")  // plain prose
	subtle := lipgloss.Color("240") // rules and glyphs

	return styles{
		section:   lg.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		rule:      lg.NewStyle().Foreground(subtle),
		sub:       lg.NewStyle().Bold(true).Foreground(accent),
		bullet:    lg.NewStyle().Foreground(accent),
		ordinal:   lg.NewStyle().Bold(true).Foreground(accent),
		timeLabel: lg.NewStyle().Bold(true).Foreground(amber),
		plain:     lg.NewStyle().Foreground(muted),
		body:      lg.NewStyle(),
		bold:      lg.NewStyle().Bold(true),
		italic:    lg.NewStyle().Italic(true),
		city:      lg.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		tagline:   lg.NewStyle().Italic(true).Foreground(muted),
		badge:     lg.NewStyle().Foreground(accent),
	}
}

// Render returns the styled itinerary, preceded by the header when h is
// non-nil. Each block produces one logical line; long lines wrap.
func (r *Renderer) Render(h *Header, blocks []itinerary.RenderedBlock) string {
	var b strings.Builder
	if h != nil {
		b.WriteString(r.header(h))
		b.WriteString("\n")
	}
	for _, blk := range blocks {
		b.WriteString(r.block(blk))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) header(h *Header) string {
	var lines []string

	title := h.City
	if h.Flag != "" {
		title = h.Flag + " " + title
	}
	lines = append(lines, r.styles.city.Render(title))
	if h.Tagline != "" {
		lines = append(lines, r.styles.tagline.Render(h.Tagline))
	}
	if len(h.Interests) > 0 {
		badges := make([]string, len(h.Interests))
		for i, tag := range h.Interests {
			badges[i] = r.styles.badge.Render("[" + tag + "]")
		}
		lines = append(lines, strings.Join(badges, " "))
	}
	lines = append(lines, r.styles.rule.Render(strings.Repeat("═", r.width)))
	return strings.Join(lines, "\n")
}

func (r *Renderer) block(blk itinerary.RenderedBlock) string {
	s := r.styles
	text := plainText(blk.Spans)

	switch blk.Kind {
	case itinerary.Blank:
		return ""
	case itinerary.SectionHeader:
		label := s.section.Render(strings.ToUpper(text))
		return label + "\n" + s.rule.Render(strings.Repeat(ruleGlyph, r.width))
	case itinerary.SubHeader:
		return s.sub.Render(text)
	case itinerary.TimeLabel:
		return s.timeLabel.Render(text)
	case itinerary.Bullet:
		return r.item(s.bullet.Render(bulletGlyph)+" ", 2, r.spans(blk.Spans, s.body))
	case itinerary.NumberedItem:
		prefix := blk.Ordinal + ". "
		return r.item(s.ordinal.Render(prefix), len(prefix), r.spans(blk.Spans, s.body))
	default:
		return r.wrap(r.spans(blk.Spans, s.plain), 0)
	}
}

// item renders a list entry with a hanging indent under its marker.
func (r *Renderer) item(marker string, markerWidth int, content string) string {
	wrapped := r.wrap(content, markerWidth)
	lines := strings.Split(wrapped, "\n")
	pad := strings.Repeat(" ", markerWidth)
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// wrap word-wraps styled content to the renderer width minus indent.
func (r *Renderer) wrap(content string, indent int) string {
	width := r.width - indent
	if lipgloss.Width(content) <= width {
		return content
	}
	wrapped := r.lg.NewStyle().Width(width).Render(content)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// spans renders inline spans on top of base. Empty emphasis spans are skipped.
func (r *Renderer) spans(spans []itinerary.Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		switch sp.Kind {
		case itinerary.Bold:
			b.WriteString(r.styles.bold.Inherit(base).Render(sp.Text))
		case itinerary.Italic:
			b.WriteString(r.styles.italic.Inherit(base).Render(sp.Text))
		default:
			b.WriteString(base.Render(sp.Text))
		}
	}
	return b.String()
}

func plainText(spans []itinerary.Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
