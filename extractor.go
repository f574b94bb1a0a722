package mise

import "context"

// RecipeExtractor extracts a recipe from raw HTML.
type RecipeExtractor interface {
	// Extract parses the HTML and returns the recipe it describes.
	// Embedded structured metadata wins over markup heuristics. Fields that
	// cannot be resolved are left empty; callers apply placeholders.
	Extract(ctx context.Context, html string, pageURL string) (*Recipe, error)
}

// DiagnosticSink receives the parsed markup of each page for offline inspection.
type DiagnosticSink interface {
	Capture(ctx context.Context, pageURL string, html string) error
}

// NopDiagnosticSink discards everything.
type NopDiagnosticSink struct{}

// Capture implements DiagnosticSink.
func (NopDiagnosticSink) Capture(context.Context, string, string) error { return nil }
