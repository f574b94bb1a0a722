package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/mise"
)

// printRecipe writes a recipe for reading in a terminal.
func printRecipe(w io.Writer, r *mise.Recipe) {
	fmt.Fprintln(w, r.Title)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Cooking time: %s\n", r.CookingTime)
	fmt.Fprintf(w, "Servings:     %s\n", r.Servings)
	fmt.Fprintf(w, "Source:       %s\n", r.SourceURL)
	if r.ID != "" {
		fmt.Fprintf(w, "ID:           %s\n", r.ID)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ingredients:")
	for _, line := range strings.Split(r.Ingredients, "\n") {
		fmt.Fprintf(w, "  - %s\n", line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Instructions:")
	for i, line := range strings.Split(r.Instructions, "\n") {
		fmt.Fprintf(w, "  %d. %s\n", i+1, line)
	}
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
