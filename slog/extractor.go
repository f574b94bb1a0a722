package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mise"
)

// Ensure LoggingExtractor implements mise.RecipeExtractor.
var _ mise.RecipeExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RecipeExtractor with debug logging.
type LoggingExtractor struct {
	next   mise.RecipeExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mise.RecipeExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs which fields were found.
func (e *LoggingExtractor) Extract(ctx context.Context, html, pageURL string) (recipe *mise.Recipe, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"url", pageURL,
			"bytes", len(html),
			"missing", missingFields(recipe),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, pageURL)
}

// missingFields lists fields left empty or at their placeholder.
func missingFields(r *mise.Recipe) []string {
	if r == nil {
		return nil
	}
	var out []string
	check := func(name, value, placeholder string) {
		if value == "" || value == placeholder {
			out = append(out, name)
		}
	}
	check("title", r.Title, mise.PlaceholderTitle)
	check("ingredients", r.Ingredients, mise.PlaceholderIngredients)
	check("instructions", r.Instructions, mise.PlaceholderInstructions)
	check("cooking_time", r.CookingTime, mise.PlaceholderCookingTime)
	check("servings", r.Servings, mise.PlaceholderServings)
	return out
}
