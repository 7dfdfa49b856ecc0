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
	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/goquery"
	"github.com/fwojciec/stash/htmltomarkdown"
	stashhttp "github.com/fwojciec/stash/http"
	"github.com/fwojciec/stash/readability"
	"github.com/fwojciec/stash/rod"
	"github.com/fwojciec/stash/save"
	stashslog "github.com/fwojciec/stash/slog"
	"github.com/fwojciec/stash/sqlite"
	"github.com/fwojciec/stash/trafilatura"
	"github.com/fwojciec/stash/yaml"
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

	// Services for end-to-end testing.
	SaveService stash.SaveService
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
		kong.Name("stash"),
		kong.Description("Save web articles and highlights as clean text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stash --help' to see available commands")
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

	logger := newLogger(cli.Verbose, stderr)
	deps.UserID = cli.User

	cfg := stash.DefaultExtractConfig()
	if cli.Config != "" {
		cfg, err = yaml.LoadExtractConfig(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config %q: %w", cli.Config, err)
		}
	}

	if cmd == "save" || cmd == "extract" {
		extractor := newExtractor(cfg, cli.Parser, cli.Format)
		deps.Extractor = stashslog.NewLoggingExtractor(extractor, logger)
		deps.Prefetcher = extractor

		fetcher, err := newFetcher(cli.Save.Browser || cli.Extract.Browser)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = stashslog.NewLoggingFetcher(fetcher, logger)
	}

	// Extraction alone never touches the database.
	if cmd == "extract" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STASH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SaveService = stashslog.NewLoggingSaveService(sqlite.NewSaveService(m.DB), logger)
	deps.Saves = m.SaveService
	deps.Importer = &save.Importer{Saves: m.SaveService}

	if cmd == "save" {
		deps.Saver = &save.Saver{
			Fetcher:          deps.Fetcher,
			Extractor:        deps.Extractor,
			Saves:            m.SaveService,
			MaxContentLength: cfg.MaxContentLength,
			Logf: func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			},
		}
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w when verbose is set, and a logger
// that discards everything otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// newExtractor builds the tiered extractor for the selected parser and
// output format.
func newExtractor(cfg stash.ExtractConfig, parser, format string) *goquery.Extractor {
	opts := []goquery.Option{goquery.WithConfig(cfg)}
	switch parser {
	case "readability":
		opts = append(opts, goquery.WithParser(readability.NewParser()))
	case "trafilatura":
		opts = append(opts, goquery.WithParser(trafilatura.NewParser()))
	}
	if format == "markdown" {
		opts = append(opts, goquery.WithConverter(htmltomarkdown.NewConverter()))
	}
	return goquery.NewExtractor(opts...)
}

// newFetcher returns a headless browser fetcher when browser is set and a
// plain HTTP fetcher otherwise.
func newFetcher(browser bool) (stash.Fetcher, error) {
	if browser {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return stashhttp.NewFetcher(), nil
}

func defaultDBPath() string {
	if path := os.Getenv("STASH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "stash.db"
	}
	dir := filepath.Join(home, ".stash")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "stash.db")
}
