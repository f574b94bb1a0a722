package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ mise.RecipeWriter = &mock.RecipeWriter{}
}

func TestRecipeWriter_WriteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecipeFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *mise.Recipe
		w := &mock.RecipeWriter{
			WriteRecipeFn: func(_ context.Context, recipe *mise.Recipe) error {
				calledWith = recipe
				return nil
			},
		}

		recipe := &mise.Recipe{
			Title:     "Test Recipe",
			SourceURL: "https://example.com/recipe",
		}

		err := w.WriteRecipe(context.Background(), recipe)

		require.NoError(t, err)
		assert.Equal(t, recipe, calledWith)
	})
}
