package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/mise"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Recipes mise.RecipeService
	Scraper mise.Scraper
	Batch   mise.BatchScraper
	Writer  mise.RecipeWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string        `name:"db" env:"MISE_DB" help:"Database path (default: ~/.mise/mise.db)"`
	DebugDir string        `name:"debug-dir" env:"MISE_DEBUG_DIR" help:"Save every fetched page to this directory"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Retry    bool          `help:"Retry network failures with backoff"`
	Verbose  bool          `short:"v" help:"Log every step to stderr"`

	Scrape ScrapeCmd `cmd:"" help:"Extract the recipe from a page"`
	Batch  BatchCmd  `cmd:"" help:"Extract recipes from several pages"`
	List   ListCmd   `cmd:"" help:"List saved recipes"`
	Show   ShowCmd   `cmd:"" help:"Show a saved recipe"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved recipe"`
}

// needsDB reports whether cmd reads or writes the recipe store.
func (c *CLI) needsDB(cmd string) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "scrape":
		return c.Scrape.Save
	case "batch":
		return c.Batch.Save
	}
	return false
}

// outDir returns the markdown export directory for cmd, if any.
func (c *CLI) outDir(cmd string) string {
	switch cmd {
	case "scrape":
		return c.Scrape.Out
	case "batch":
		return c.Batch.Out
	}
	return ""
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL  string `arg:"" help:"Recipe page URL"`
	Save bool   `short:"s" help:"Save the recipe to the database"`
	JSON bool   `help:"Print the recipe as JSON"`
	Out  string `short:"o" help:"Also write the recipe as markdown under this directory"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs        []string `arg:"" name:"url" help:"Recipe page URLs"`
	Save        bool     `short:"s" help:"Save recipes to the database"`
	Out         string   `short:"o" help:"Also write recipes as markdown under this directory"`
	Concurrency int      `short:"c" default:"4" help:"Pages fetched at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title string `short:"T" help:"Only recipes whose title contains this text"`
	Limit int    `short:"n" default:"50" help:"Maximum number of recipes"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Recipe ID"`
	JSON bool   `help:"Print the recipe as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}
