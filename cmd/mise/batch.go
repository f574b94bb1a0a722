package main

import (
	"fmt"

	"github.com/fwojciec/mise"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	progress := func(p mise.ScrapeProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n", p.Completed, p.Total, p.URL, mise.ErrorMessage(p.Error))
			return
		}
		fmt.Fprintf(deps.Stderr, "  [%d/%d] ok %s\n", p.Completed, p.Total, p.URL)
	}

	results := deps.Batch.ScrapeAll(deps.Ctx, c.URLs, progress)

	scraped := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := keep(deps, r.Recipe); err != nil {
			return err
		}
		scraped++
		if r.Recipe.ID != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.Recipe.ID, r.Recipe.Title, r.URL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Recipe.Title, r.URL)
		}
	}

	fmt.Fprintf(deps.Stderr, "Scraped %d of %d recipes\n", scraped, len(results))

	if scraped == 0 {
		return mise.Errorf(mise.EEXTRACT, "no recipes extracted")
	}
	return nil
}
