package mock

import (
	"context"

	"github.com/fwojciec/mise"
)

var _ mise.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of mise.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, recipe *mise.Recipe) error
	FindRecipeByIDFn func(ctx context.Context, id string) (*mise.Recipe, error)
	FindRecipesFn    func(ctx context.Context, filter mise.RecipeFilter) ([]*mise.Recipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *mise.Recipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*mise.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter mise.RecipeFilter) ([]*mise.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}

var _ mise.RecipeWriter = (*RecipeWriter)(nil)

// RecipeWriter is a mock implementation of mise.RecipeWriter.
type RecipeWriter struct {
	WriteRecipeFn func(ctx context.Context, recipe *mise.Recipe) error
}

func (w *RecipeWriter) WriteRecipe(ctx context.Context, recipe *mise.Recipe) error {
	return w.WriteRecipeFn(ctx, recipe)
}
