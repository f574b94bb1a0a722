package fs

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mise"
	"github.com/google/uuid"
)

// Ensure DiagnosticWriter implements mise.DiagnosticSink at compile time.
var _ mise.DiagnosticSink = (*DiagnosticWriter)(nil)

// DiagnosticWriter saves fetched pages to a directory for inspecting
// extraction failures. Every capture gets its own file, so concurrent
// extractions never overwrite each other.
type DiagnosticWriter struct {
	dir string
}

// NewDiagnosticWriter creates a DiagnosticWriter that writes to dir.
func NewDiagnosticWriter(dir string) *DiagnosticWriter {
	return &DiagnosticWriter{dir: dir}
}

// Capture writes html to <dir>/<host>-<url hash>-<random>.html.
func (w *DiagnosticWriter) Capture(ctx context.Context, pageURL string, html string) error {
	path := filepath.Join(w.dir, DiagnosticFileName(pageURL))
	if err := writeFileAtomic(path, []byte(html)); err != nil {
		return fmt.Errorf("failed to write diagnostic capture: %w", err)
	}
	return nil
}

// DiagnosticFileName returns a unique file name for a capture of pageURL.
// Captures of the same URL share the host and hash prefix.
func DiagnosticFileName(pageURL string) string {
	host := "page"
	if u, err := url.Parse(pageURL); err == nil && u.Hostname() != "" {
		host = strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	}
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%016x-%s.html", host, xxhash.Sum64String(pageURL), suffix)
}
