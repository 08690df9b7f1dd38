package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strconv"
	"strings"
)

// ErrHeaderRender indicates the trip header template failed to render.
var ErrHeaderRender = errors.New("header template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	if pos := afterBodyOpen(htmlContent, lowerHTML); pos != -1 {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so CSS cannot close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// afterBodyOpen returns the offset just past the <body ...> tag, or -1.
func afterBodyOpen(htmlContent, lowerHTML string) int {
	idx := strings.Index(lowerHTML, "<body")
	if idx == -1 {
		return -1
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return -1
	}
	return idx + closeIdx + 1
}

// HeaderData holds the trip summary shown above the itinerary.
type HeaderData struct {
	City      string
	Tagline   string
	Flag      string
	Interests []string
}

// HeaderInjector defines the contract for trip header injection into HTML.
type HeaderInjector interface {
	InjectHeader(ctx context.Context, htmlContent string, data *HeaderData) (string, error)
}

// HeaderInjection renders and injects the trip header card.
type HeaderInjection struct {
	tmpl *template.Template
}

// NewHeaderInjection creates a HeaderInjection from template content.
func NewHeaderInjection(tmplContent string) (*HeaderInjection, error) {
	tmpl, err := template.New("header").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing header template: %w", err)
	}
	return &HeaderInjection{tmpl: tmpl}, nil
}

// InjectHeader renders the header template and injects it right after <body>.
// If data is nil, returns htmlContent unchanged.
func (h *HeaderInjection) InjectHeader(ctx context.Context, htmlContent string, data *HeaderData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHeaderRender, err)
	}

	headerHTML := buf.String()
	if pos := afterBodyOpen(htmlContent, strings.ToLower(htmlContent)); pos != -1 {
		return htmlContent[:pos] + headerHTML + htmlContent[pos:], nil
	}
	return headerHTML + htmlContent, nil
}

// TOCData holds table of contents configuration.
type TOCData struct {
	Title    string
	MaxDepth int // 2 = days only, 3 = days and sub-headers
}

// TOCInjector defines the contract for TOC injection into HTML.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error)
}

// TOCInjection builds a navigation list from rendered headings.
type TOCInjection struct{}

// NewTOCInjection creates a new TOC injector.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// headingInfo is one heading extracted from rendered HTML.
type headingInfo struct {
	Level int
	ID    string
	Text  string
}

// headingPattern matches h2-h3 tags with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([23])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[23]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// mainOpenPattern locates the itinerary body, where the TOC is inserted.
var mainOpenPattern = regexp.MustCompile(`(?i)<main[^>]*>`)

// stripHTMLTags removes tags and decodes entities so the text can be
// escaped once when written into the TOC.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

func extractHeadings(htmlContent string, maxDepth int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level > maxDepth {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    html.UnescapeString(m[2]),
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

func generateTOC(headings []headingInfo, title string) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)
	if title != "" {
		buf.WriteString(`<h2 class="toc-title">`)
		buf.WriteString(html.EscapeString(title))
		buf.WriteString(`</h2>`)
	}
	buf.WriteString(`<div class="toc-list">`)
	for _, h := range headings {
		buf.WriteString(`<div class="toc-item toc-level-`)
		buf.WriteString(strconv.Itoa(h.Level))
		buf.WriteString(`"><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a></div>`)
	}
	buf.WriteString(`</div></nav>`)
	return buf.String()
}

// InjectTOC extracts headings and injects a TOC before the itinerary body.
// If data is nil or the document has no headings, returns htmlContent unchanged.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string, data *TOCData) (string, error) {
	if data == nil {
		return htmlContent, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	maxDepth := data.MaxDepth
	if maxDepth == 0 {
		maxDepth = 3
	}

	// The TOC title itself is an h2 without id, so it never lists itself.
	tocHTML := generateTOC(extractHeadings(htmlContent, maxDepth), data.Title)
	if tocHTML == "" {
		return htmlContent, nil
	}

	if loc := mainOpenPattern.FindStringIndex(htmlContent); loc != nil {
		return htmlContent[:loc[0]] + tocHTML + htmlContent[loc[0]:], nil
	}
	if pos := afterBodyOpen(htmlContent, strings.ToLower(htmlContent)); pos != -1 {
		return htmlContent[:pos] + tocHTML + htmlContent[pos:], nil
	}
	return tocHTML + htmlContent, nil
}
