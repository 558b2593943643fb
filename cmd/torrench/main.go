package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/torrench"
	"github.com/fwojciec/torrench/bencode"
	"github.com/fwojciec/torrench/etree"
	"github.com/fwojciec/torrench/fs"
	"github.com/fwojciec/torrench/goquery"
	thttp "github.com/fwojciec/torrench/http"
	"github.com/fwojciec/torrench/search"
	tslog "github.com/fwojciec/torrench/slog"
	"github.com/fwojciec/torrench/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nTerminated")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Directory .torrent files are saved to. Set before calling Run().
	DownloadsDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Fetcher torrench.Fetcher
	History torrench.HistoryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		DownloadsDir: defaultDownloadsDir(),
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("torrench"),
		kong.Description("Search nyaa.si and download .torrent files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'torrench --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if cli.DownloadDir != "" {
		m.DownloadsDir = cli.DownloadDir
	}

	// Open history only for commands that use it.
	if cmd == "history" || (cmd == "search" && !cli.NoHistory) {
		deps.History = m.History
		if deps.History == nil {
			if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set TORRENCH_DB to use a different database path, or pass --no-history\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			deps.History = sqlite.NewHistoryService(m.DB)
		}
	}

	if cmd == "search" {
		fetcher := m.Fetcher
		if fetcher == nil {
			f := thttp.NewFetcher(thttp.WithTimeout(cli.Timeout))
			defer f.Close()
			fetcher = f
		}
		fetcher = tslog.NewLoggingFetcher(fetcher, logger)

		extractor, format := newExtractor(cli.Search.Extractor, cli.BaseURL, logger)
		rateLimiter := search.NewDomainLimiter(search.DefaultRequestsPerSecond)

		deps.Searcher = &search.Searcher{
			BaseURL:     cli.BaseURL,
			Format:      format,
			Fetcher:     fetcher,
			Extractor:   tslog.NewLoggingExtractor(extractor, logger),
			RateLimiter: rateLimiter,
			Logger:      logger,
			Pages:       cli.Search.Pages,
			Concurrency: cli.Search.Concurrency,
		}
		deps.Downloader = &search.Downloader{
			Fetcher:     fetcher,
			Parser:      bencode.NewParser(),
			Store:       tslog.NewLoggingStore(fs.NewTorrentStore(m.DownloadsDir), logger),
			History:     deps.History,
			RateLimiter: rateLimiter,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor returns the listing extractor for name and the page format
// it reads.
func newExtractor(name, baseURL string, logger *slog.Logger) (torrench.ListingExtractor, torrench.PageFormat) {
	switch name {
	case "positional":
		return goquery.NewPositionalExtractor(goquery.WithBaseURL(baseURL), goquery.WithLogger(logger)), torrench.FormatHTML
	case "feed":
		return etree.NewFeedExtractor(), torrench.FormatRSS
	default:
		return goquery.NewRowExtractor(goquery.WithBaseURL(baseURL), goquery.WithLogger(logger)), torrench.FormatHTML
	}
}

func defaultDBPath() string {
	if path := os.Getenv("TORRENCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "torrench.db"
	}
	return filepath.Join(home, ".torrench", "torrench.db")
}

func defaultDownloadsDir() string {
	if dir := os.Getenv("TORRENCH_DOWNLOADS"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads", "torrench")
}
