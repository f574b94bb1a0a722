package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/mise"
	main "github.com/fwojciec/mise/cmd/mise"
	"github.com/fwojciec/mise/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soupRecipe() *mise.Recipe {
	return &mise.Recipe{
		Title:        "Soup",
		Ingredients:  "water\nsalt",
		Instructions: "Boil.\nSeason.",
		CookingTime:  "10 minutes",
		Servings:     "2",
		SourceURL:    "https://example.com/soup",
	}
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints scraped recipe", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, url string) (*mise.Recipe, error) {
				assert.Equal(t, "https://example.com/soup", url)
				return soupRecipe(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/soup"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		want := `Soup

Cooking time: 10 minutes
Servings:     2
Source:       https://example.com/soup

Ingredients:
  - water
  - salt

Instructions:
  1. Boil.
  2. Season.
`
		assert.Equal(t, want, stdout.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*mise.Recipe, error) {
				return soupRecipe(), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/soup", JSON: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"title": "Soup",
			"ingredients": "water\nsalt",
			"instructions": "Boil.\nSeason.",
			"cookingTime": "10 minutes",
			"servings": "2",
			"sourceUrl": "https://example.com/soup"
		}`, stdout.String())
	})

	t.Run("saves and exports when wired", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*mise.Recipe, error) {
				return soupRecipe(), nil
			},
		}
		var saved, written *mise.Recipe
		recipes := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, r *mise.Recipe) error {
				r.ID = "rec-1"
				saved = r
				return nil
			},
		}
		writer := &mock.RecipeWriter{
			WriteRecipeFn: func(_ context.Context, r *mise.Recipe) error {
				written = r
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
			Recipes: recipes,
			Writer:  writer,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/soup", Save: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		require.NotNil(t, written)
		assert.Equal(t, "rec-1", written.ID)
		assert.Contains(t, stdout.String(), "ID:           rec-1")
	})

	t.Run("reports extraction error message", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*mise.Recipe, error) {
				return nil, mise.Errorf(mise.EEXTRACT, "failed to fetch the page: status code 404")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: failed to fetch the page: status code 404\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("returns save error", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*mise.Recipe, error) {
				return soupRecipe(), nil
			},
		}
		recipes := &mock.RecipeService{
			CreateRecipeFn: func(context.Context, *mise.Recipe) error {
				return errors.New("disk full")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Scraper: scraper,
			Recipes: recipes,
		}

		cmd := &main.ScrapeCmd{URL: "https://example.com/soup", Save: true}
		err := cmd.Run(deps)

		require.EqualError(t, err, "disk full")
		assert.Contains(t, stderr.String(), "error:")
		assert.Empty(t, stdout.String())
	})
}
