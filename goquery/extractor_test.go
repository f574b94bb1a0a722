package goquery_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/goquery"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements mise.RecipeExtractor at compile time.
var _ mise.RecipeExtractor = (*goquery.Extractor)(nil)

const markupPage = `<!DOCTYPE html>
<html>
<body>
<h1 class="recipe-title">Garlic Bread</h1>
<ul class="ingredients"><li>bread</li><li>garlic</li></ul>
<ol class="instructions"><li>Spread.</li><li>Bake.</li></ol>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers structured metadata over markup", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		html := ldJSONPage(`{"@type": "Recipe", "name": "From Metadata", "recipeIngredient": ["x"]}`)

		recipe, err := e.Extract(context.Background(), html, "https://example.com/r/1")

		require.NoError(t, err)
		assert.Equal(t, "From Metadata", recipe.Title)
		assert.Equal(t, "x", recipe.Ingredients)
		assert.Empty(t, recipe.SourceURL, "metadata path leaves the source URL to the caller")
	})

	t.Run("falls back to markup when metadata is not a recipe", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		html := ldJSONPage(`[{"@type": "WebPage"}]`)

		recipe, err := e.Extract(context.Background(), html, "https://example.com/r/2")

		require.NoError(t, err)
		assert.Equal(t, "Markup Title", recipe.Title)
		assert.Equal(t, "https://example.com/r/2", recipe.SourceURL)
	})

	t.Run("uses markup locators without metadata", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		recipe, err := e.Extract(context.Background(), markupPage, "https://example.com/bread")

		require.NoError(t, err)
		assert.Equal(t, &mise.Recipe{
			Title:        "Garlic Bread",
			Ingredients:  "bread\ngarlic",
			Instructions: "Spread.\nBake.",
			CookingTime:  mise.PlaceholderCookingTime,
			Servings:     mise.PlaceholderServings,
			SourceURL:    "https://example.com/bread",
		}, recipe)
	})

	t.Run("uses locators registered for the page domain", func(t *testing.T) {
		t.Parallel()

		site := goquery.DefaultLocators()
		site.Title = goquery.Field{
			Selectors:   goquery.Selectors("p.headline"),
			Placeholder: mise.PlaceholderTitle,
		}
		registry := goquery.NewRegistry(goquery.DefaultLocators())
		registry.Register("special.example", site)
		e := goquery.NewExtractor(goquery.WithRegistry(registry))
		html := `<html><body><h1>Generic</h1><p class="headline">Site Specific</p></body></html>`

		special, err := e.Extract(context.Background(), html, "https://www.special.example/x")
		require.NoError(t, err)
		other, err := e.Extract(context.Background(), html, "https://other.example/x")
		require.NoError(t, err)

		assert.Equal(t, "Site Specific", special.Title)
		assert.Equal(t, "Generic", other.Title)
	})

	t.Run("captures parsed page to the diagnostic sink", func(t *testing.T) {
		t.Parallel()

		var capturedURL, capturedHTML string
		sink := &mock.DiagnosticSink{
			CaptureFn: func(_ context.Context, pageURL, html string) error {
				capturedURL = pageURL
				capturedHTML = html
				return nil
			},
		}
		e := goquery.NewExtractor(goquery.WithDiagnosticSink(sink))

		_, err := e.Extract(context.Background(), markupPage, "https://example.com/bread")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/bread", capturedURL)
		assert.Contains(t, capturedHTML, "Garlic Bread")
	})

	t.Run("sink failure is logged and ignored", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		sink := &mock.DiagnosticSink{
			CaptureFn: func(context.Context, string, string) error {
				return errors.New("disk full")
			},
		}
		e := goquery.NewExtractor(
			goquery.WithDiagnosticSink(sink),
			goquery.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)

		recipe, err := e.Extract(context.Background(), markupPage, "https://example.com/bread")

		require.NoError(t, err)
		assert.Equal(t, "Garlic Bread", recipe.Title)
		assert.Contains(t, buf.String(), "diagnostic capture failed")
		assert.Contains(t, buf.String(), "disk full")
	})

	t.Run("is deterministic for the same page", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		first, err := e.Extract(context.Background(), markupPage, "https://example.com/bread")
		require.NoError(t, err)
		second, err := e.Extract(context.Background(), markupPage, "https://example.com/bread")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
