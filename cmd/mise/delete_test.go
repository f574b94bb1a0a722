package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/mise"
	main "github.com/fwojciec/mise/cmd/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes recipe when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		recipes := &mock.RecipeService{
			FindRecipeByIDFn: func(_ context.Context, id string) (*mise.Recipe, error) {
				return &mise.Recipe{ID: id, Title: "Soup"}, nil
			},
			DeleteRecipeFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Recipes: recipes,
		}

		cmd := &main.DeleteCmd{ID: "rec-1", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", deletedID)
		assert.Contains(t, stdout.String(), `Deleted recipe "Soup"`)
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Recipes: &mock.RecipeService{},
		}

		cmd := &main.DeleteCmd{ID: "rec-1", Force: false}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mise.EINVALID, mise.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing recipe", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			FindRecipeByIDFn: func(context.Context, string) (*mise.Recipe, error) {
				return nil, mise.Errorf(mise.ENOTFOUND, "recipe not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Recipes: recipes,
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "mise list")
	})
}
