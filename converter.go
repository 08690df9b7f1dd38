package itinerary

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-itinerary/internal/assets"
	"github.com/alnah/go-itinerary/internal/destinations"
	"github.com/alnah/go-itinerary/internal/fileutil"
	"github.com/alnah/go-itinerary/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLRenderer   = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.CSSInjector    = (*pipeline.CSSInjection)(nil)
	_ pipeline.HeaderInjector = (*pipeline.HeaderInjection)(nil)
	_ pipeline.TOCInjector    = (*pipeline.TOCInjection)(nil)
	_ pdfConverter            = (*rodConverter)(nil)
	_ pdfRenderer             = (*rodRenderer)(nil)
)

// Converter turns itinerary text into a styled HTML page and, optionally,
// a PDF. Create with NewConverter, use Convert, and Close when done.
type Converter struct {
	cfg            converterConfig
	assetLoader    assets.Loader
	htmlRenderer   pipeline.HTMLRenderer
	cssInjector    pipeline.CSSInjector
	headerInjector pipeline.HeaderInjector
	tocInjector    pipeline.TOCInjector
	pdfConverter   pdfConverter
}

// NewConverter creates a Converter with the default style.
// Returns error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		assetLoader:  assets.NewEmbeddedLoader(),
		htmlRenderer: pipeline.NewGoldmarkRenderer(),
		cssInjector:  &pipeline.CSSInjection{},
		tocInjector:  pipeline.NewTOCInjection(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.headerInjector == nil {
		tmpl, err := c.assetLoader.LoadTemplate(assets.HeaderTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading header template: %w", err)
		}
		c.headerInjector, err = pipeline.NewHeaderInjection(tmpl)
		if err != nil {
			return nil, fmt.Errorf("initializing header injector: %w", err)
		}
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert classifies input.Text, renders the styled HTML page and, unless
// input.HTMLOnly is set, prints it to PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := Render(input.Text)

	htmlContent, err := c.htmlRenderer.ToHTML(ctx, input.Trip.Title(), toBlockData(blocks))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	// Converter style first, user CSS last so it can override.
	cssContent := c.cfg.style
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// TOC goes before <main>, header right after <body>, so order is free.
	htmlContent, err = c.tocInjector.InjectTOC(ctx, htmlContent, toTOCData(input.TOC))
	if err != nil {
		return nil, fmt.Errorf("injecting TOC: %w", err)
	}

	htmlContent, err = c.headerInjector.InjectHeader(ctx, htmlContent, toHeaderData(input.Trip))
	if err != nil {
		return nil, fmt.Errorf("injecting header: %w", err)
	}

	res := &ConvertResult{
		Blocks: blocks,
		HTML:   []byte(htmlContent),
	}
	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Footer: input.Footer,
		Page:   input.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
// An empty input selects the default built-in style.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.style = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.style = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrStyleNotFound, input, err)
	}
	c.cfg.style = css
	return nil
}

// validateInput checks that required fields are present and valid.
// CLI input is validated earlier by config.Validate; library callers land here.
func validateInput(input Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return ErrEmptyItinerary
	}
	if err := input.Trip.Validate(); err != nil {
		return err
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return input.TOC.Validate()
}

// toBlockData converts rendered blocks to the pipeline's presentation view.
func toBlockData(blocks []RenderedBlock) []pipeline.BlockData {
	out := make([]pipeline.BlockData, len(blocks))
	for i, b := range blocks {
		spans := make([]pipeline.SpanData, len(b.Spans))
		for j, s := range b.Spans {
			spans[j] = pipeline.SpanData{
				Bold:   s.Kind == Bold,
				Italic: s.Kind == Italic,
				Text:   s.Text,
			}
		}
		out[i] = pipeline.BlockData{
			Kind:    b.Kind.String(),
			Ordinal: b.Ordinal,
			Index:   b.Index,
			Spans:   spans,
		}
	}
	return out
}

// toHeaderData builds the header card, filling flag and tagline from the
// destination catalog when the city is known.
func toHeaderData(t *Trip) *pipeline.HeaderData {
	if t == nil || strings.TrimSpace(t.City) == "" {
		return nil
	}
	data := &pipeline.HeaderData{
		City:      strings.TrimSpace(t.City),
		Interests: destinations.NormalizeInterests(t.Interests),
	}
	if d, ok := destinations.Lookup(t.City); ok {
		data.City = d.Name
		data.Flag = d.Flag
		data.Tagline = d.Tagline
	}
	return data
}

func toTOCData(t *TOC) *pipeline.TOCData {
	if t == nil {
		return nil
	}
	return &pipeline.TOCData{
		Title:    t.Title,
		MaxDepth: t.MaxDepth,
	}
}
