package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mise"
)

// Locators holds the field locators used to read a recipe from markup
// that has no structured metadata.
type Locators struct {
	Title        Field
	Ingredients  Field
	Instructions Field
	CookingTime  Field
	Servings     Field
}

// Locate runs every field locator independently against doc.
// Fields that cannot be found carry their placeholder.
func (l *Locators) Locate(doc *goquery.Document) mise.Recipe {
	return mise.Recipe{
		Title:        l.Title.Locate(doc),
		Ingredients:  l.Ingredients.Locate(doc),
		Instructions: l.Instructions.Locate(doc),
		CookingTime:  l.CookingTime.Locate(doc),
		Servings:     l.Servings.Locate(doc),
	}
}

// DefaultLocators returns the generic locators, ordered from the most
// specific recipe-plugin markup to plain HTML.
func DefaultLocators() *Locators {
	return &Locators{
		Title: Field{
			Name: "title",
			Selectors: Selectors(
				"h1.recipe-title",
				"h1.entry-title",
				"h1.title",
				`h1[class*="title"]`,
				`h1[class*="recipe"]`,
				"h1",
			),
			Placeholder: mise.PlaceholderTitle,
		},
		Ingredients: Field{
			Name: "ingredients",
			Selectors: Selectors(
				".recipe-ingredients li",
				".ingredients li",
				`[itemprop="recipeIngredient"]`,
				".ingredient-list li",
				".ingredient",
				`[class*="ingredient"]`,
			),
			Multiple:    true,
			Keywords:    []string{"ingredient"},
			Placeholder: mise.PlaceholderIngredients,
		},
		Instructions: Field{
			Name: "instructions",
			Selectors: Selectors(
				".recipe-instructions li",
				".instructions li",
				`[itemprop="recipeInstructions"]`,
				".preparation-steps li",
				".prep-steps li",
				`[class*="instruction"] li`,
				`[class*="step"] li`,
			),
			Multiple:    true,
			Keywords:    []string{"instruction", "step"},
			Placeholder: mise.PlaceholderInstructions,
		},
		CookingTime: Field{
			Name: "cooking_time",
			Selectors: Selectors(
				`[itemprop="totalTime"]`,
				`[itemprop="cookTime"]`,
				".recipe-time",
				".cooking-time",
				`[class*="time"]`,
			),
			Placeholder: mise.PlaceholderCookingTime,
		},
		Servings: Field{
			Name: "servings",
			Selectors: Selectors(
				`[itemprop="recipeYield"]`,
				".recipe-yield",
				".servings",
				`[class*="yield"]`,
				`[class*="serving"]`,
			),
			Placeholder: mise.PlaceholderServings,
		},
	}
}
