package mise

import "context"

// Response is the raw result of fetching a page.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch requests the URL with the given headers.
	// Non-2xx responses are returned, not treated as errors; only network
	// failures produce an error.
	Fetch(ctx context.Context, url string, headers map[string]string) (*Response, error)
}
