// Package mise extracts structured recipes (title, ingredients, instructions,
// cooking time, servings) from recipe web pages. Embedded JSON-LD metadata is
// preferred; pages without it are scanned with ordered selector chains.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package mise
