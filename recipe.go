package mise

import (
	"context"
	"time"
)

// Placeholders substituted for fields that cannot be resolved from a page.
const (
	PlaceholderTitle        = "Unknown Recipe"
	PlaceholderIngredients  = "Ingredients not found"
	PlaceholderInstructions = "Instructions not found"
	PlaceholderCookingTime  = "Time not specified"
	PlaceholderServings     = "Servings not specified"
)

// Recipe represents a recipe extracted from a web page.
type Recipe struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`  // One ingredient per line
	Instructions string `json:"instructions"` // One step per line
	CookingTime  string `json:"cookingTime"`
	Servings     string `json:"servings"`
	SourceURL    string `json:"sourceUrl"`

	// Set by storage.
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// WithPlaceholders returns a copy of the recipe where every empty extracted
// field is replaced by its placeholder.
func (r Recipe) WithPlaceholders() Recipe {
	r.Title = orPlaceholder(r.Title, PlaceholderTitle)
	r.Ingredients = orPlaceholder(r.Ingredients, PlaceholderIngredients)
	r.Instructions = orPlaceholder(r.Instructions, PlaceholderInstructions)
	r.CookingTime = orPlaceholder(r.CookingTime, PlaceholderCookingTime)
	r.Servings = orPlaceholder(r.Servings, PlaceholderServings)
	return r
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// Validate returns an error if the recipe contains invalid fields.
// Title, ingredients and instructions are required for storage.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	if r.Ingredients == "" {
		return Errorf(EINVALID, "recipe ingredients required")
	}
	if r.Instructions == "" {
		return Errorf(EINVALID, "recipe instructions required")
	}
	return nil
}

// RecipeService represents a service for managing stored recipes.
type RecipeService interface {
	// CreateRecipe stores a recipe and assigns its ID. If a recipe with the
	// same source URL and content is already stored, the recipe takes the
	// stored ID and creation time and nothing new is written.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter, newest first.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Title     *string `json:"title"`

	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecipeWriter writes recipes to a destination other than the store.
type RecipeWriter interface {
	WriteRecipe(ctx context.Context, recipe *Recipe) error
}
