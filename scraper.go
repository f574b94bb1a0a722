package mise

import "context"

// Scraper turns a recipe page URL into a Recipe.
type Scraper interface {
	// Scrape fetches and extracts the recipe at url.
	// On success every field of the returned recipe is non-empty. On failure
	// the recipe is nil and the error has code EEXTRACT.
	Scrape(ctx context.Context, url string) (*Recipe, error)
}

// BatchScraper scrapes many URLs at once.
type BatchScraper interface {
	// ScrapeAll returns one result per URL in input order. A failed URL
	// does not stop the others.
	ScrapeAll(ctx context.Context, urls []string, progress ScrapeProgressFunc) []ScrapeResult
}

// ScrapeResult is the outcome of scraping one URL in a batch.
// Exactly one of Recipe and Err is set.
type ScrapeResult struct {
	URL    string
	Recipe *Recipe
	Err    error
}

// ScrapeProgress reports progress during a batch scrape.
type ScrapeProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ScrapeProgressFunc is called as each URL finishes.
type ScrapeProgressFunc func(ScrapeProgress)
