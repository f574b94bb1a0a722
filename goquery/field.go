package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Field describes how to locate one recipe field in markup.
type Field struct {
	// Name identifies the field in logs.
	Name string

	// Selectors are tried in order; the first one producing non-empty text wins.
	Selectors []Selector

	// Multiple collects every match of the winning selector instead of the first.
	Multiple bool

	// Keywords enable the container fallback: the first element whose class,
	// then id, contains one of the keywords (case-insensitive) has its list
	// items harvested. Only used when Multiple is set.
	Keywords []string

	// Placeholder is returned when nothing is found.
	Placeholder string
}

var listItem = MustCompile("li")

// Locate returns the field's text in doc, or the placeholder.
// Multiple values are joined with newlines in document order.
func (f Field) Locate(doc *goquery.Document) string {
	values := f.values(doc.Selection)
	if len(values) == 0 {
		return f.Placeholder
	}
	return strings.Join(values, "\n")
}

func (f Field) values(root *goquery.Selection) []string {
	collect := firstText
	if f.Multiple {
		collect = allTexts
	}

	if values := firstNonEmpty(root, f.Selectors, collect); len(values) > 0 {
		return values
	}

	if !f.Multiple || len(f.Keywords) == 0 {
		return nil
	}

	container := findContainer(root, "class", f.Keywords)
	if container == nil {
		container = findContainer(root, "id", f.Keywords)
	}
	if container == nil {
		return nil
	}
	return allTexts(listItem.find(root.FindNodes(container)))
}

// firstNonEmpty evaluates selectors in priority order and returns what
// collect produces for the first selector that yields anything. Results of
// different selectors are never merged.
func firstNonEmpty(root *goquery.Selection, selectors []Selector, collect func(*goquery.Selection) []string) []string {
	for _, s := range selectors {
		if values := collect(s.find(root)); len(values) > 0 {
			return values
		}
	}
	return nil
}

// firstText returns the trimmed text of the first element with any.
func firstText(sel *goquery.Selection) []string {
	var out []string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			out = []string{text}
			return false
		}
		return true
	})
	return out
}

// allTexts returns the trimmed, non-empty texts of every element in order.
func allTexts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// findContainer walks the tree in document order and returns the first
// element whose attr value contains any keyword, ignoring case.
func findContainer(root *goquery.Selection, attr string, keywords []string) *html.Node {
	for _, n := range root.Nodes {
		if found := walkForContainer(n, attr, keywords); found != nil {
			return found
		}
	}
	return nil
}

func walkForContainer(n *html.Node, attr string, keywords []string) *html.Node {
	if n.Type == html.ElementNode && attrContains(n, attr, keywords) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := walkForContainer(c, attr, keywords); found != nil {
			return found
		}
	}
	return nil
}

func attrContains(n *html.Node, attr string, keywords []string) bool {
	for _, a := range n.Attr {
		if a.Key != attr {
			continue
		}
		val := strings.ToLower(a.Val)
		for _, kw := range keywords {
			if strings.Contains(val, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}
