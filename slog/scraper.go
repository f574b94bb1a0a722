package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mise"
)

// Ensure LoggingScraper implements mise.Scraper.
var _ mise.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   mise.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next mise.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (recipe *mise.Recipe, err error) {
	defer func(begin time.Time) {
		title := ""
		if recipe != nil {
			title = recipe.Title
		}
		s.logger.Info("scrape",
			"url", url,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Ensure LoggingBatchScraper implements mise.BatchScraper.
var _ mise.BatchScraper = (*LoggingBatchScraper)(nil)

// LoggingBatchScraper wraps a BatchScraper, logging each URL as it finishes
// and a summary once the batch is done.
type LoggingBatchScraper struct {
	next   mise.BatchScraper
	logger *slog.Logger
}

// NewLoggingBatchScraper creates a new LoggingBatchScraper.
func NewLoggingBatchScraper(next mise.BatchScraper, logger *slog.Logger) *LoggingBatchScraper {
	return &LoggingBatchScraper{next: next, logger: logger}
}

// ScrapeAll delegates to the wrapped scraper. Progress is logged before it
// reaches the caller's callback.
func (s *LoggingBatchScraper) ScrapeAll(ctx context.Context, urls []string, progress mise.ScrapeProgressFunc) (results []mise.ScrapeResult) {
	defer func(begin time.Time) {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		s.logger.Info("scrape batch",
			"count", len(urls),
			"failed", failed,
			"duration", time.Since(begin),
		)
	}(time.Now())

	logged := func(p mise.ScrapeProgress) {
		s.logger.Info("scrape",
			"url", p.URL,
			"completed", p.Completed,
			"total", p.Total,
			"err", p.Error,
		)
		if progress != nil {
			progress(p)
		}
	}
	return s.next.ScrapeAll(ctx, urls, logged)
}
