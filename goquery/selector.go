// Package goquery implements recipe extraction on top of goquery: JSON-LD
// parsing and the selector chains used when a page carries no metadata.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/mise"
)

// Selector is a CSS selector compiled once and reused across pages.
type Selector struct {
	Query   string
	matcher cascadia.Selector
}

// Compile parses a CSS selector.
func Compile(query string) (Selector, error) {
	m, err := cascadia.Compile(query)
	if err != nil {
		return Selector{}, mise.Errorf(mise.EINVALID, "invalid selector %q: %v", query, err)
	}
	return Selector{Query: query, matcher: m}, nil
}

// MustCompile is like Compile but panics on an invalid selector.
// Intended for package-level selector tables.
func MustCompile(query string) Selector {
	s, err := Compile(query)
	if err != nil {
		panic(err)
	}
	return s
}

// Selectors compiles each query in order.
func Selectors(queries ...string) []Selector {
	out := make([]Selector, 0, len(queries))
	for _, q := range queries {
		out = append(out, MustCompile(q))
	}
	return out
}

// find returns the elements under root matching the selector.
// A Selector built as a literal (without Compile) falls back to goquery's
// own parsing of Query.
func (s Selector) find(root *goquery.Selection) *goquery.Selection {
	if s.matcher == nil {
		return root.Find(s.Query)
	}
	return root.FindMatcher(s.matcher)
}
