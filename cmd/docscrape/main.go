package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	dshttp "github.com/fwojciec/docscrape/http"
	"github.com/fwojciec/docscrape/scrape"
	dsslog "github.com/fwojciec/docscrape/slog"
	"github.com/fwojciec/docscrape/sqlite"
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
	// CachePath is used when --cache is not given.
	CachePath string

	// Parser reads the fetched pages.
	Parser docscrape.Parser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
		Parser:    goquery.NewParser(),
	}
}

// defaultCachePath returns $DOCSCRAPE_CACHE or ~/.docscrape/cache.db.
func defaultCachePath() string {
	if p := os.Getenv("DOCSCRAPE_CACHE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".docscrape", "cache.db")
	}
	return filepath.Join(home, ".docscrape", "cache.db")
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Extract release notes, versions, archives and PEP statuses from the Python documentation.\n\n"+
			"Errors are logged to stderr and logs/parser.log; the process then exits with status 1."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err = parser.Parse(args); err != nil {
		return err
	}

	logger, logFile, err := newLogger(cli.BaseDir, cli.LogLevel, stderr)
	if err != nil {
		return docscrape.Errorf(docscrape.EINVALID, "invalid log level %q", cli.LogLevel)
	}
	defer logFile.Close()

	logger.Info("parser started")
	logger.Info("arguments", "mode", cli.Mode, "clear_cache", cli.ClearCache, "output", cli.Output)

	defer func() {
		if r := recover(); r != nil {
			err = docscrape.Errorf(docscrape.EINTERNAL, "panic: %v", r)
			logger.Error("parser crashed", "err", err)
		}
	}()

	parsePages := m.Parser
	if parsePages == nil {
		parsePages = goquery.NewParser()
	}

	cachePath := cli.Cache
	if cachePath == "" {
		cachePath = m.CachePath
	}
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	db := sqlite.NewDB(cachePath)
	if err := db.Open(); err != nil {
		logger.Error("failed to open cache", "path", cachePath, "err", err)
		return err
	}
	defer db.Close()

	cache := dsslog.NewLoggingResponseCache(sqlite.NewResponseCache(db), logger)

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = dshttp.DefaultFetchTimeout
	}

	var transport docscrape.Fetcher = dshttp.NewFetcher(
		dshttp.WithTimeout(timeout),
		dshttp.WithRateLimit(cli.Rate),
	)
	transport = dsslog.NewLoggingFetcher(transport, logger)
	fetcher := scrape.NewCachedFetcher(transport, cache, logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Cache:  cache,
		Scraper: &scrape.Scraper{
			Fetcher:  fetcher,
			Parser:   parsePages,
			Archives: fs.NewArchiveStore(filepath.Join(cli.BaseDir, fs.DownloadsDirName)),
			Logger:   logger,
			Progress: progressPrinter(stderr, cli.Mode),
			DocURL:   cli.DocURL,
			PEPURL:   cli.PEPURL,
			Encoding: cli.Encoding,
		},
		Output: newOutput(cli.Output, cli.BaseDir, stdout, logger),
	}

	cmd := &ScrapeCmd{
		Mode:       cli.Mode,
		ClearCache: cli.ClearCache,
	}
	if err := cmd.Run(deps); err != nil {
		logger.Error("parser failed",
			"mode", cli.Mode,
			"code", docscrape.ErrorCode(err),
			"err", docscrape.ErrorMessage(err),
		)
		return err
	}

	logger.Info("parser finished", "mode", cli.Mode)
	return nil
}
