package mock

import (
	"context"

	"github.com/fwojciec/mise"
)

var _ mise.RecipeExtractor = (*RecipeExtractor)(nil)

// RecipeExtractor is a mock implementation of mise.RecipeExtractor.
type RecipeExtractor struct {
	ExtractFn func(ctx context.Context, html string, pageURL string) (*mise.Recipe, error)
}

func (e *RecipeExtractor) Extract(ctx context.Context, html string, pageURL string) (*mise.Recipe, error) {
	return e.ExtractFn(ctx, html, pageURL)
}

var _ mise.DiagnosticSink = (*DiagnosticSink)(nil)

// DiagnosticSink is a mock implementation of mise.DiagnosticSink.
type DiagnosticSink struct {
	CaptureFn func(ctx context.Context, pageURL string, html string) error
}

func (s *DiagnosticSink) Capture(ctx context.Context, pageURL string, html string) error {
	return s.CaptureFn(ctx, pageURL, html)
}
