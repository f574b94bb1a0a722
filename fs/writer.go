// Package fs provides file-based output for recipes: markdown exports and
// diagnostic page captures.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/mise"
)

// URLToPath converts a recipe URL to a relative file path grouped by host.
// Example: https://www.example.com/recipes/soup → example.com/recipes/soup.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", mise.Errorf(mise.EINVALID, "recipe URL has no host: %s", rawURL)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.TrimPrefix(u.Path, "/")

	switch {
	case path == "":
		return host + "/index.md", nil
	case strings.HasSuffix(path, "/"):
		// Trailing slash becomes index.md in that directory
		return host + "/" + path + "index.md", nil
	default:
		return host + "/" + path + ".md", nil
	}
}

// FormatRecipe formats a recipe as markdown with YAML frontmatter.
// Frontmatter values are double-quoted so any title or servings text parses.
// Ingredients become a bullet list and instructions a numbered list.
func FormatRecipe(recipe *mise.Recipe) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeFrontmatter(&b, "source", recipe.SourceURL)
	writeFrontmatter(&b, "title", recipe.Title)
	writeFrontmatter(&b, "cooking_time", recipe.CookingTime)
	writeFrontmatter(&b, "servings", recipe.Servings)
	if !recipe.CreatedAt.IsZero() {
		writeFrontmatter(&b, "saved", recipe.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString("---\n\n# ")
	b.WriteString(recipe.Title)

	b.WriteString("\n\n## Ingredients\n\n")
	for _, line := range strings.Split(recipe.Ingredients, "\n") {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n## Instructions\n\n")
	for i, line := range strings.Split(recipe.Instructions, "\n") {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

// writeFrontmatter writes one key with its value as a YAML double-quoted
// scalar. strconv.Quote only emits escapes that YAML also accepts.
func writeFrontmatter(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(strconv.Quote(value))
	b.WriteString("\n")
}

// Ensure Writer implements mise.RecipeWriter at compile time.
var _ mise.RecipeWriter = (*Writer)(nil)

// Writer writes recipes as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecipe writes a recipe to disk as a markdown file, replacing any
// earlier export of the same URL.
func (w *Writer) WriteRecipe(ctx context.Context, recipe *mise.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}
	if recipe.SourceURL == "" {
		return mise.Errorf(mise.EINVALID, "recipe source URL required")
	}

	relPath, err := URLToPath(recipe.SourceURL)
	if err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(w.baseDir, relPath), []byte(FormatRecipe(recipe)))
}

// writeFileAtomic writes data to a temporary sibling file, then renames it
// into place so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
