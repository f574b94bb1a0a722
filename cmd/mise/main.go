package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/fs"
	"github.com/fwojciec/mise/goquery"
	misehttp "github.com/fwojciec/mise/http"
	"github.com/fwojciec/mise/scrape"
	miseslog "github.com/fwojciec/mise/slog"
	"github.com/fwojciec/mise/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecipeService mise.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mise"),
		kong.Description("Extract recipes from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mise --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	if cli.needsDB(cmd) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MISE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RecipeService = miseslog.NewLoggingRecipeService(sqlite.NewRecipeService(m.DB), logger)
		deps.Recipes = m.RecipeService
	}

	if cmd == "scrape" || cmd == "batch" {
		scraper := newScraper(cli, logger)
		deps.Scraper = miseslog.NewLoggingScraper(scraper, logger)
		deps.Batch = miseslog.NewLoggingBatchScraper(scraper, logger)

		if out := cli.outDir(cmd); out != "" {
			deps.Writer = fs.NewWriter(out)
		}
	}

	return kongCtx.Run(deps)
}

// newScraper wires the HTTP fetcher and goquery extractor into a Scraper.
func newScraper(cli *CLI, logger *slog.Logger) *scrape.Scraper {
	fetcher := miseslog.NewLoggingFetcher(misehttp.NewFetcher(misehttp.WithTimeout(cli.Timeout)), logger)

	opts := []goquery.Option{goquery.WithLogger(logger)}
	if cli.DebugDir != "" {
		opts = append(opts, goquery.WithDiagnosticSink(fs.NewDiagnosticWriter(cli.DebugDir)))
	}
	extractor := miseslog.NewLoggingExtractor(goquery.NewExtractor(opts...), logger)

	config := scrape.DefaultConfig()
	config.Logger = logger
	if cli.Retry {
		config.RetryDelays = scrape.DefaultRetryDelays()
	}
	if cli.Batch.Concurrency > 0 {
		config.Concurrency = cli.Batch.Concurrency
	}

	return scrape.NewScraper(fetcher, extractor, config)
}

// newLogger returns a text logger on stderr when verbose, otherwise one
// that only reports warnings.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("MISE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mise.db"
	}
	dir := filepath.Join(home, ".mise")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mise.db")
}
