// Package scrape turns recipe page URLs into recipes. It fetches pages,
// hands the markup to a mise.RecipeExtractor, and reports every failure as
// a single EEXTRACT error.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/mise"
)

// DefaultUserAgent is a conventional desktop browser user agent. Some recipe
// sites reject requests from clients that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultConcurrency is the number of pages ScrapeAll processes at once.
const DefaultConcurrency = 4

// Config holds the fixed settings of a Scraper.
type Config struct {
	// Headers are sent with every request.
	Headers map[string]string

	// RetryDelays are the waits between attempts after a network failure.
	// Empty means a single attempt. HTTP status errors are never retried.
	RetryDelays []time.Duration

	// Concurrency bounds ScrapeAll. Zero means DefaultConcurrency.
	Concurrency int

	// Logger receives retry messages. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Headers:     map[string]string{"User-Agent": DefaultUserAgent},
		Concurrency: DefaultConcurrency,
	}
}

// Ensure Scraper implements mise.Scraper and mise.BatchScraper at compile time.
var (
	_ mise.Scraper      = (*Scraper)(nil)
	_ mise.BatchScraper = (*Scraper)(nil)
)

// Scraper fetches recipe pages and extracts recipes from them.
// It holds no state besides its configuration and is safe for concurrent use.
type Scraper struct {
	fetcher   mise.Fetcher
	extractor mise.RecipeExtractor
	config    Config
}

// NewScraper creates a Scraper. The config is copied, so later changes to
// the caller's maps or slices do not affect the Scraper.
func NewScraper(fetcher mise.Fetcher, extractor mise.RecipeExtractor, config Config) *Scraper {
	config.Headers = maps.Clone(config.Headers)
	config.RetryDelays = slices.Clone(config.RetryDelays)
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		config:    config,
	}
}

// Scrape fetches url and extracts its recipe. Every field of the returned
// recipe is non-empty; unresolved fields carry placeholders. Any failure,
// including a panic below this call, is returned as an EEXTRACT error.
func (s *Scraper) Scrape(ctx context.Context, url string) (recipe *mise.Recipe, err error) {
	defer func() {
		if r := recover(); r != nil {
			recipe = nil
			err = mise.Errorf(mise.EEXTRACT, "unexpected failure extracting %s: %v", url, r)
		}
	}()

	fetch := func(ctx context.Context, url string) (*mise.Response, error) {
		return s.fetcher.Fetch(ctx, url, s.config.Headers)
	}
	logf := func(format string, args ...any) {
		s.config.Logger.Info(fmt.Sprintf(format, args...))
	}

	resp, err := FetchWithRetryDelays(ctx, url, fetch, logf, s.config.RetryDelays)
	if err != nil {
		return nil, mise.Errorf(mise.EEXTRACT, "failed to fetch %s: %s", url, errorText(err))
	}
	if !resp.OK() {
		return nil, mise.Errorf(mise.EEXTRACT, "failed to fetch the page: status code %d", resp.StatusCode)
	}

	extracted, err := s.extractor.Extract(ctx, string(resp.Body), url)
	if err != nil {
		return nil, mise.Errorf(mise.EEXTRACT, "failed to extract recipe from %s: %s", url, errorText(err))
	}
	if extracted == nil {
		return nil, mise.Errorf(mise.EEXTRACT, "no recipe found at %s", url)
	}

	out := extracted.WithPlaceholders()
	if out.SourceURL == "" {
		out.SourceURL = url
	}
	return &out, nil
}

// errorText returns the message of an application error, or the error text.
func errorText(err error) string {
	var e *mise.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
