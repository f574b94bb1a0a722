package main

import (
	"fmt"

	"github.com/fwojciec/mise"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mise.ErrorMessage(err))
		return err
	}

	if err := keep(deps, recipe); err != nil {
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, recipe)
	}
	printRecipe(deps.Stdout, recipe)
	return nil
}

// keep saves and exports a scraped recipe when those outputs are wired.
func keep(deps *Dependencies, recipe *mise.Recipe) error {
	if deps.Recipes != nil {
		if err := deps.Recipes.CreateRecipe(deps.Ctx, recipe); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mise.ErrorMessage(err))
			return err
		}
	}
	if deps.Writer != nil {
		if err := deps.Writer.WriteRecipe(deps.Ctx, recipe); err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to export recipe: %s\n", mise.ErrorMessage(err))
			return err
		}
	}
	return nil
}
