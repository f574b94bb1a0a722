package scrape

import (
	"context"

	"github.com/fwojciec/mise"
	"golang.org/x/sync/errgroup"
)

// indexedResult carries a result back to its input position.
type indexedResult struct {
	position int
	result   mise.ScrapeResult
}

// ScrapeAll scrapes every URL with at most Config.Concurrency pages in
// flight. Results are returned in input order; a failed URL has Err set and
// does not stop the others. The progress callback, if provided, is invoked
// from a single goroutine as each URL finishes.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress mise.ScrapeProgressFunc) []mise.ScrapeResult {
	results := make([]mise.ScrapeResult, len(urls))
	if len(urls) == 0 {
		return results
	}

	resultCh := make(chan indexedResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				recipe, err := s.Scrape(gctx, url)
				resultCh <- indexedResult{
					position: i,
					result:   mise.ScrapeResult{URL: url, Recipe: recipe, Err: err},
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r.result

		if progress != nil {
			progress(mise.ScrapeProgress{
				URL:       r.result.URL,
				Completed: completed,
				Total:     len(urls),
				Error:     r.result.Err,
			})
		}
	}

	return results
}
