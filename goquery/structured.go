package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
	"github.com/tidwall/gjson"
)

var ldJSONScript = MustCompile(`script[type="application/ld+json"]`)

// ParseStructured reads the first JSON-LD script in doc and returns the
// schema.org Recipe it describes. It returns false when there is no script,
// when the JSON is malformed, or when no Recipe object is present. Malformed
// JSON is logged at debug level and otherwise treated as absent.
//
// Fields missing from the metadata are left empty.
func ParseStructured(doc *goquery.Document, logger *slog.Logger) (*mise.Recipe, bool) {
	script := ldJSONScript.find(doc.Selection).First()
	if script.Length() == 0 {
		return nil, false
	}

	payload := script.Text()
	if !gjson.Valid(payload) {
		logger.Debug("json-ld extraction failed", "err", "malformed JSON", "bytes", len(payload))
		return nil, false
	}

	data, ok := recipeObject(gjson.Parse(payload))
	if !ok {
		return nil, false
	}

	cookingTime, err := mise.FormatDuration(data.Get("cookTime").String())
	if err != nil {
		logger.Debug("json-ld cook time ignored", "err", err)
		cookingTime = ""
	}

	return &mise.Recipe{
		Title:        strings.TrimSpace(data.Get("name").String()),
		Ingredients:  strings.Join(stringList(data.Get("recipeIngredient")), "\n"),
		Instructions: strings.Join(instructionSteps(data.Get("recipeInstructions")), "\n"),
		CookingTime:  cookingTime,
		Servings:     yield(data.Get("recipeYield")),
	}, true
}

// recipeObject selects the Recipe from a JSON-LD payload: the payload itself
// if it is a Recipe object, or the first Recipe element of an array.
func recipeObject(data gjson.Result) (gjson.Result, bool) {
	if data.IsArray() {
		for _, item := range data.Array() {
			if typeOf(item) == "Recipe" {
				return item, true
			}
		}
		return gjson.Result{}, false
	}
	if typeOf(data) != "Recipe" {
		return gjson.Result{}, false
	}
	return data, true
}

// typeOf returns the "@type" of an object. The key is read from the parsed
// map because gjson treats a leading '@' in paths as a modifier.
func typeOf(v gjson.Result) string {
	if !v.IsObject() {
		return ""
	}
	return v.Map()["@type"].String()
}

func stringList(v gjson.Result) []string {
	var out []string
	for _, item := range v.Array() {
		if s := strings.TrimSpace(item.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// instructionSteps resolves recipeInstructions entries to text. Entries are
// plain strings or HowToStep objects with a "text" field; HowToSection
// objects contribute the steps in their itemListElement.
func instructionSteps(v gjson.Result) []string {
	var out []string
	for _, step := range v.Array() {
		switch {
		case step.Type == gjson.String:
			if s := strings.TrimSpace(step.String()); s != "" {
				out = append(out, s)
			}
		case step.IsObject() && step.Get("text").Exists():
			if s := strings.TrimSpace(step.Get("text").String()); s != "" {
				out = append(out, s)
			}
		case step.IsObject() && step.Get("itemListElement").Exists():
			out = append(out, instructionSteps(step.Get("itemListElement"))...)
		}
	}
	return out
}

// yield renders recipeYield as text. Lists are joined with ", ".
func yield(v gjson.Result) string {
	switch {
	case !v.Exists():
		return ""
	case v.IsArray():
		return strings.Join(stringList(v), ", ")
	case v.Type == gjson.Number:
		return v.Raw
	default:
		return strings.TrimSpace(v.String())
	}
}
