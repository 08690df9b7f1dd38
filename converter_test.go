package itinerary

// Notes:
// - Tests Converter.Convert with mocked pipeline components to isolate unit logic
// - Internal test options (withHTMLRenderer, etc.) enable dependency injection
// - Non-mocked tests use the real goldmark renderer with HTMLOnly set, so no
//   browser is needed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-itinerary/internal/pipeline"
)

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

type mockHTMLRenderer struct {
	called     bool
	inputTitle string
	input      []pipeline.BlockData
	output     string
	err        error
}

func (m *mockHTMLRenderer) ToHTML(ctx context.Context, title string, blocks []pipeline.BlockData) (string, error) {
	m.called = true
	m.inputTitle = title
	m.input = blocks
	if m.err != nil {
		return "", m.err
	}
	if m.output != "" {
		return m.output, nil
	}
	return "<html><head></head><body><main></main></body></html>", nil
}

type mockPDFConverter struct {
	called    bool
	closed    bool
	inputHTML string
	inputOpts *pdfOptions
	output    []byte
	err       error
}

func (m *mockPDFConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.called = true
	m.inputHTML = htmlContent
	m.inputOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockPDFConverter) Close() error {
	m.closed = true
	return nil
}

type mockHeaderInjector struct {
	called    bool
	inputData *pipeline.HeaderData
	err       error
}

func (m *mockHeaderInjector) InjectHeader(ctx context.Context, htmlContent string, data *pipeline.HeaderData) (string, error) {
	m.called = true
	m.inputData = data
	if m.err != nil {
		return "", m.err
	}
	return htmlContent, nil
}

type panicRenderer struct{}

func (panicRenderer) ToHTML(context.Context, string, []pipeline.BlockData) (string, error) {
	panic("boom")
}

// ---------------------------------------------------------------------------
// Test Options
// ---------------------------------------------------------------------------

func withHTMLRenderer(r pipeline.HTMLRenderer) Option {
	return func(c *Converter) {
		c.htmlRenderer = r
	}
}

func withPDFConverter(p pdfConverter) Option {
	return func(c *Converter) {
		c.pdfConverter = p
	}
}

func withHeaderInjector(h pipeline.HeaderInjector) Option {
	return func(c *Converter) {
		c.headerInjector = h
	}
}

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	t.Cleanup(func() { _ = conv.Close() })
	return conv
}

// ---------------------------------------------------------------------------
// TestValidateInput
// ---------------------------------------------------------------------------

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{name: "valid", input: Input{Text: "## Day 1"}},
		{name: "empty text", input: Input{}, wantErr: ErrEmptyItinerary},
		{name: "whitespace text", input: Input{Text: " \n\t"}, wantErr: ErrEmptyItinerary},
		{name: "invalid page", input: Input{Text: "x", Page: &PageSettings{Size: "tabloid", Orientation: "portrait", Margin: 1}}, wantErr: ErrInvalidPageSize},
		{name: "invalid footer", input: Input{Text: "x", Footer: &Footer{Position: "top"}}, wantErr: ErrInvalidFooterPosition},
		{name: "invalid toc", input: Input{Text: "x", TOC: &TOC{MaxDepth: 6}}, wantErr: ErrInvalidTOCDepth},
		{name: "invalid trip", input: Input{Text: "x", Trip: &Trip{Interests: []string{strings.Repeat("z", 51)}}}, wantErr: ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateInput(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateInput() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Pipeline Flow with Mocks
// ---------------------------------------------------------------------------

func TestConvert_Success(t *testing.T) {
	t.Parallel()

	renderer := &mockHTMLRenderer{}
	pdf := &mockPDFConverter{}
	header := &mockHeaderInjector{}
	conv := newTestConverter(t, withHTMLRenderer(renderer), withPDFConverter(pdf), withHeaderInjector(header))

	page := &PageSettings{Size: "letter", Orientation: "portrait", Margin: 1}
	footer := &Footer{ShowPageNumber: true}
	result, err := conv.Convert(context.Background(), Input{
		Text:   "## Day 1\n- **Tea**",
		Trip:   &Trip{City: "kyoto", Interests: []string{" food ", "food"}},
		CSS:    "body{margin:0}",
		Page:   page,
		Footer: footer,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(result.Blocks) != 2 {
		t.Errorf("Blocks = %d, want 2", len(result.Blocks))
	}
	if string(result.PDF) != "%PDF-1.4 mock" {
		t.Errorf("PDF = %q", result.PDF)
	}

	if renderer.inputTitle != "kyoto Itinerary" {
		t.Errorf("title = %q", renderer.inputTitle)
	}
	if len(renderer.input) != 2 || renderer.input[1].Kind != pipeline.KindBullet {
		t.Fatalf("renderer input = %+v", renderer.input)
	}
	if s := renderer.input[1].Spans; len(s) != 1 || !s[0].Bold || s[0].Text != "Tea" {
		t.Errorf("bullet spans = %+v", s)
	}

	if header.inputData == nil {
		t.Fatal("header data is nil")
	}
	if header.inputData.City != "Kyoto" || header.inputData.Tagline != "Ancient Japan" || header.inputData.Flag == "" {
		t.Errorf("header data = %+v", header.inputData)
	}
	if len(header.inputData.Interests) != 1 || header.inputData.Interests[0] != "food" {
		t.Errorf("interests = %v, want [food]", header.inputData.Interests)
	}

	if !strings.Contains(pdf.inputHTML, "body{margin:0}") {
		t.Error("user CSS not injected")
	}
	if pdf.inputOpts.Page != page || pdf.inputOpts.Footer != footer {
		t.Errorf("pdf options = %+v", pdf.inputOpts)
	}
}

func TestConvert_UnknownCityHeader(t *testing.T) {
	t.Parallel()

	header := &mockHeaderInjector{}
	conv := newTestConverter(t, withPDFConverter(&mockPDFConverter{}), withHeaderInjector(header))

	_, err := conv.Convert(context.Background(), Input{
		Text:     "Day trip",
		Trip:     &Trip{City: "Lisbon"},
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if header.inputData.City != "Lisbon" || header.inputData.Tagline != "" || header.inputData.Flag != "" {
		t.Errorf("header data = %+v", header.inputData)
	}
}

func TestConvert_NoTripNoHeader(t *testing.T) {
	t.Parallel()

	header := &mockHeaderInjector{}
	conv := newTestConverter(t, withPDFConverter(&mockPDFConverter{}), withHeaderInjector(header))

	if _, err := conv.Convert(context.Background(), Input{Text: "x", HTMLOnly: true}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if header.inputData != nil {
		t.Errorf("header data = %+v, want nil", header.inputData)
	}
}

func TestConvert_HTMLOnlySkipsPDF(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{}
	conv := newTestConverter(t, withPDFConverter(pdf))

	result, err := conv.Convert(context.Background(), Input{Text: "## Day 1", HTMLOnly: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if pdf.called {
		t.Error("PDF converter called in HTML-only mode")
	}
	if result.PDF != nil {
		t.Error("expected nil PDF")
	}
	if !strings.Contains(string(result.HTML), `class="section-header"`) {
		t.Errorf("HTML missing section header: %s", result.HTML)
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		renderer := &mockHTMLRenderer{}
		conv := newTestConverter(t, withHTMLRenderer(renderer), withPDFConverter(&mockPDFConverter{}))
		_, err := conv.Convert(context.Background(), Input{})
		if !errors.Is(err, ErrEmptyItinerary) {
			t.Errorf("error = %v, want ErrEmptyItinerary", err)
		}
		if renderer.called {
			t.Error("renderer called despite invalid input")
		}
	})

	t.Run("html renderer", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t,
			withHTMLRenderer(&mockHTMLRenderer{err: errors.New("bad tree")}),
			withPDFConverter(&mockPDFConverter{}))
		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if !errors.Is(err, ErrHTMLRender) {
			t.Errorf("error = %v, want ErrHTMLRender", err)
		}
	})

	t.Run("header injector", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("header failed")
		conv := newTestConverter(t,
			withHeaderInjector(&mockHeaderInjector{err: sentinel}),
			withPDFConverter(&mockPDFConverter{}))
		_, err := conv.Convert(context.Background(), Input{Text: "x", Trip: &Trip{City: "Rome"}})
		if !errors.Is(err, sentinel) {
			t.Errorf("error = %v, want %v", err, sentinel)
		}
	})

	t.Run("pdf converter", func(t *testing.T) {
		t.Parallel()

		conv := newTestConverter(t, withPDFConverter(&mockPDFConverter{err: ErrBrowserConnect}))
		_, err := conv.Convert(context.Background(), Input{Text: "x"})
		if !errors.Is(err, ErrBrowserConnect) {
			t.Errorf("error = %v, want ErrBrowserConnect", err)
		}
	})
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, withHTMLRenderer(panicRenderer{}), withPDFConverter(&mockPDFConverter{}))

	_, err := conv.Convert(context.Background(), Input{Text: "x"})
	if err == nil || !strings.Contains(err.Error(), "internal error") {
		t.Errorf("error = %v, want internal error", err)
	}
}

func TestConvert_ContextCancellation(t *testing.T) {
	t.Parallel()

	renderer := &mockHTMLRenderer{}
	conv := newTestConverter(t, withHTMLRenderer(renderer), withPDFConverter(&mockPDFConverter{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.Convert(ctx, Input{Text: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if renderer.called {
		t.Error("renderer called after cancellation")
	}
}

func TestConvert_TOC(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, withPDFConverter(&mockPDFConverter{}))

	result, err := conv.Convert(context.Background(), Input{
		Text:     "## Day 1\n### Evening\n## Day 2",
		TOC:      &TOC{Title: "Days", MaxDepth: 2},
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	html := string(result.HTML)
	for _, want := range []string{`<nav class="toc">`, `href="#day-1"`, `href="#day-2"`} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Contains(html, `href="#evening"`) {
		t.Error("depth 2 TOC should not list sub-headers")
	}
}

// ---------------------------------------------------------------------------
// TestNewConverter - Options
// ---------------------------------------------------------------------------

func TestNewConverter_DefaultStyle(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, withPDFConverter(&mockPDFConverter{}))
	if conv.cfg.style == "" {
		t.Error("expected default style CSS")
	}
	if conv.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", conv.cfg.timeout, defaultTimeout)
	}
}

func TestNewConverter_Style(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := filepath.Join(dir, "custom.css")
	if err := os.WriteFile(cssPath, []byte(".bullet{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{name: "built-in name", style: "daylight"},
		{name: "file path", style: cssPath, want: ".bullet{color:red}"},
		{name: "raw css", style: "p { margin: 0 }", want: "p { margin: 0 }"},
		{name: "unknown name", style: "neon", wantErr: ErrStyleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(WithStyle(tt.style), withPDFConverter(&mockPDFConverter{}))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			defer conv.Close()

			if conv.cfg.style == "" {
				t.Fatal("style not resolved")
			}
			if tt.want != "" && conv.cfg.style != tt.want {
				t.Errorf("style = %q, want %q", conv.cfg.style, tt.want)
			}
		})
	}
}

func TestNewConverter_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := NewConverter(WithAssetPath("/nonexistent/itinerary-assets"), withPDFConverter(&mockPDFConverter{}))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewConverter_AssetPathOverridesStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "midnight.css"), []byte("/* custom midnight */"), 0o644); err != nil {
		t.Fatal(err)
	}

	conv := newTestConverter(t, WithAssetPath(dir), withPDFConverter(&mockPDFConverter{}))
	if conv.cfg.style != "/* custom midnight */" {
		t.Errorf("style = %q, want custom override", conv.cfg.style)
	}
}

func TestConverter_Close(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{}
	conv, err := NewConverter(withPDFConverter(pdf))
	if err != nil {
		t.Fatal(err)
	}
	if err := conv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !pdf.closed {
		t.Error("PDF converter not closed")
	}

	if err := (&Converter{}).Close(); err != nil {
		t.Errorf("Close() on zero converter error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestToBlockData - Presentation Conversion
// ---------------------------------------------------------------------------

func TestToBlockData(t *testing.T) {
	t.Parallel()

	got := toBlockData(Render("3) **Ramen** at *Ichiran*\n\n### Night"))
	if len(got) != 3 {
		t.Fatalf("got %d blocks, want 3", len(got))
	}

	item := got[0]
	if item.Kind != pipeline.KindNumberedItem || item.Ordinal != "3" || item.Index != 0 {
		t.Errorf("item = %+v", item)
	}
	want := []pipeline.SpanData{
		{Bold: true, Text: "Ramen"},
		{Text: " at "},
		{Italic: true, Text: "Ichiran"},
	}
	if len(item.Spans) != len(want) {
		t.Fatalf("spans = %+v", item.Spans)
	}
	for i := range want {
		if item.Spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, item.Spans[i], want[i])
		}
	}

	if got[1].Kind != pipeline.KindBlank || len(got[1].Spans) != 0 {
		t.Errorf("blank = %+v", got[1])
	}
	if got[2].Kind != pipeline.KindSubHeader || got[2].PlainText() != "Night" {
		t.Errorf("sub-header = %+v", got[2])
	}
}
