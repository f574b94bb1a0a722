package goquery

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// Ensure Extractor implements mise.RecipeExtractor at compile time.
var _ mise.RecipeExtractor = (*Extractor)(nil)

// Extractor reads recipes from HTML. JSON-LD metadata is used when present;
// otherwise the locators registered for the page's domain scan the markup.
type Extractor struct {
	registry *Registry
	sink     mise.DiagnosticSink
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRegistry sets the locator registry.
// Defaults to a registry holding only DefaultLocators.
func WithRegistry(r *Registry) Option {
	return func(e *Extractor) {
		e.registry = r
	}
}

// WithDiagnosticSink sets where parsed pages are captured.
// Defaults to mise.NopDiagnosticSink.
func WithDiagnosticSink(sink mise.DiagnosticSink) Option {
	return func(e *Extractor) {
		e.sink = sink
	}
}

// WithLogger sets the logger for recoverable problems such as malformed JSON-LD.
// Defaults to discarding everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		registry: NewRegistry(DefaultLocators()),
		sink:     mise.NopDiagnosticSink{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns the recipe it describes.
// SourceURL is set only when the markup locators were used.
func (e *Extractor) Extract(ctx context.Context, rawHTML string, pageURL string) (*mise.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mise.Errorf(mise.EINVALID, "failed to parse HTML: %v", err)
	}

	e.capture(ctx, doc, pageURL)

	if recipe, ok := ParseStructured(doc, e.logger); ok {
		return recipe, nil
	}

	recipe := e.registry.Get(originDomain(pageURL)).Locate(doc)
	recipe.SourceURL = pageURL
	return &recipe, nil
}

// capture hands the parsed document to the diagnostic sink. Failures are
// logged and never affect extraction.
func (e *Extractor) capture(ctx context.Context, doc *goquery.Document, pageURL string) {
	if _, ok := e.sink.(mise.NopDiagnosticSink); ok {
		return
	}
	html, err := doc.Html()
	if err != nil {
		e.logger.Warn("diagnostic render failed", "url", pageURL, "err", err)
		return
	}
	if err := e.sink.Capture(ctx, pageURL, html); err != nil {
		e.logger.Warn("diagnostic capture failed", "url", pageURL, "err", err)
	}
}

// originDomain returns the host of pageURL, or "" if it cannot be parsed.
func originDomain(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
