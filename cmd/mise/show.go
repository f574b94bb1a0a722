package main

import (
	"fmt"

	"github.com/fwojciec/mise"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if mise.ErrorCode(err) == mise.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'mise list' to see saved recipes.\n", c.ID)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mise.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, recipe)
	}
	printRecipe(deps.Stdout, recipe)
	return nil
}
