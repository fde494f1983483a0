package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/esoxjem/luego"
	"github.com/esoxjem/luego/batch"
	"github.com/esoxjem/luego/extract"
	"github.com/esoxjem/luego/goquery"
	"github.com/esoxjem/luego/htmltomarkdown"
	luegohttp "github.com/esoxjem/luego/http"
	"github.com/esoxjem/luego/readability"
	luegoslog "github.com/esoxjem/luego/slog"
	"github.com/esoxjem/luego/sqlite"
	"github.com/esoxjem/luego/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService luego.ArticleService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("luego"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'luego --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Fetch prints straight to stdout and never touches the database.
	if cmd == "fetch" {
		deps.Extractor = newExtractor(cli.Fetch.Engine, cli.Fetch.Verbose, stderr)
		return kongCtx.Run(deps)
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LUEGO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire command-specific dependencies based on command
	if cmd == "save" {
		extractor := newExtractor(cli.Save.Engine, cli.Save.Verbose, stderr)

		var logger batch.LogFunc
		if cli.Save.Verbose {
			logger = func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			}
		}

		deps.Saver = &batch.Saver{
			Extractor:   extractor,
			Articles:    m.ArticleService,
			RateLimiter: batch.NewDomainLimiter(cli.Save.Rate),
			Concurrency: cli.Save.Concurrency,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor builds the extraction engine selected by the --engine flag.
// With verbose on, the fetcher and extractor are wrapped in slog decorators
// writing to stderr so stdout stays clean for the article output.
func newExtractor(engine string, verbose bool, stderr io.Writer) luego.Extractor {
	var logger *slog.Logger
	if verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var fetcher luego.Fetcher = luegohttp.NewFetcher()
	if verbose {
		fetcher = luegoslog.NewLoggingFetcher(fetcher, logger)
	}

	var extractor luego.Extractor
	switch engine {
	case "readability":
		extractor = readability.NewExtractor(fetcher, htmltomarkdown.NewConverter())
	case "trafilatura":
		extractor = trafilatura.NewExtractor(fetcher, htmltomarkdown.NewConverter())
	default:
		extractor = extract.New(fetcher, goquery.NewParser())
	}

	if verbose {
		extractor = luegoslog.NewLoggingExtractor(extractor, logger)
	}
	return extractor
}

func defaultDBPath() string {
	if path := os.Getenv("LUEGO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "luego.db"
	}
	dir := filepath.Join(home, ".luego")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "luego.db")
}
