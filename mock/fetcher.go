package mock

import (
	"context"

	"github.com/fwojciec/mise"
)

var _ mise.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mise.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, headers map[string]string) (*mise.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) (*mise.Response, error) {
	return f.FetchFn(ctx, url, headers)
}
