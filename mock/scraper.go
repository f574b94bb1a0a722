package mock

import (
	"context"

	"github.com/fwojciec/mise"
)

var _ mise.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of mise.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*mise.Recipe, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*mise.Recipe, error) {
	return s.ScrapeFn(ctx, url)
}

var _ mise.BatchScraper = (*BatchScraper)(nil)

// BatchScraper is a mock implementation of mise.BatchScraper.
type BatchScraper struct {
	ScrapeAllFn func(ctx context.Context, urls []string, progress mise.ScrapeProgressFunc) []mise.ScrapeResult
}

func (s *BatchScraper) ScrapeAll(ctx context.Context, urls []string, progress mise.ScrapeProgressFunc) []mise.ScrapeResult {
	return s.ScrapeAllFn(ctx, urls, progress)
}
