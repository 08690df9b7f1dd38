package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLRender indicates the block tree could not be rendered to HTML.
var ErrHTMLRender = errors.New("HTML rendering failed")

// DefaultTitle is the document title used when no trip city is known.
const DefaultTitle = "Itinerary"

// animationStep is the per-block reveal delay, in seconds.
const animationStep = 0.025

// htmlTemplate wraps the rendered block fragment in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<main class="itinerary">
%s</main>
</body>
</html>`

// HTMLRenderer abstracts rendering of itinerary blocks to an HTML document.
type HTMLRenderer interface {
	ToHTML(ctx context.Context, title string, blocks []BlockData) (string, error)
}

// GoldmarkRenderer builds a goldmark AST from blocks and renders it with
// goldmark's HTML renderer. Block text only ever enters the tree as raw
// string nodes, so it is HTML-escaped and never interpreted as Markdown.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// ToHTML renders blocks into a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *GoldmarkRenderer) ToHTML(ctx context.Context, title string, blocks []BlockData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultTitle
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		doc := buildDocument(blocks)
		if err := r.md.Renderer().Render(&buf, nil, doc); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, html.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// buildDocument maps each block to exactly one top-level node.
func buildDocument(blocks []BlockData) *ast.Document {
	doc := ast.NewDocument()
	ids := newIDRegistry()

	for _, b := range blocks {
		var node ast.Node
		switch {
		case b.isHeading():
			h := ast.NewHeading(b.headingLevel())
			h.SetAttributeString("id", []byte(ids.next(b.PlainText())))
			appendSpans(h, b.Spans)
			node = h
		case b.Kind == KindTimeLabel:
			p := ast.NewParagraph()
			strong := ast.NewEmphasis(2)
			appendSpans(strong, b.Spans)
			p.AppendChild(p, strong)
			node = p
		case b.Kind == KindNumberedItem:
			p := ast.NewParagraph()
			p.SetAttributeString("data-ordinal", []byte(b.Ordinal))
			p.AppendChild(p, codeString(`<span class="ordinal">`+html.EscapeString(b.Ordinal)+`.</span> `))
			appendSpans(p, b.Spans)
			node = p
		default:
			p := ast.NewParagraph()
			appendSpans(p, b.Spans)
			node = p
		}

		node.SetAttributeString("class", []byte(b.Kind))
		node.SetAttributeString("style", []byte(animationDelay(b.Index)))
		doc.AppendChild(doc, node)
	}

	return doc
}

// appendSpans adds inline nodes for spans under parent.
// Empty emphasis spans are skipped.
func appendSpans(parent ast.Node, spans []SpanData) {
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		text := rawString(s.Text)
		switch {
		case s.Bold:
			em := ast.NewEmphasis(2)
			em.AppendChild(em, text)
			parent.AppendChild(parent, em)
		case s.Italic:
			em := ast.NewEmphasis(1)
			em.AppendChild(em, text)
			parent.AppendChild(parent, em)
		default:
			parent.AppendChild(parent, text)
		}
	}
}

// rawString returns a string node written with HTML escaping only.
func rawString(s string) *ast.String {
	n := ast.NewString([]byte(s))
	n.SetRaw(true)
	return n
}

// codeString returns a string node written verbatim. Callers must escape.
func codeString(s string) *ast.String {
	n := ast.NewString([]byte(s))
	n.SetCode(true)
	return n
}

func animationDelay(index int) string {
	return "animation-delay:" + strconv.FormatFloat(float64(index)*animationStep, 'f', 3, 64) + "s"
}

// idRegistry hands out unique anchor IDs for headings.
type idRegistry struct {
	seen map[string]int
}

func newIDRegistry() *idRegistry {
	return &idRegistry{seen: make(map[string]int)}
}

// next returns a slug for text, suffixed with -N when already used.
func (r *idRegistry) next(text string) string {
	base := slugify(text)
	if base == "" {
		base = "section"
	}
	n := r.seen[base]
	r.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}

// slugify lowercases text and joins letter and digit runs with hyphens.
func slugify(text string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
