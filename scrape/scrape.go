// Package scrape implements the extraction routines. Each routine fetches
// a root page, locates a known container and turns its items into table
// rows, fetching per-item pages where needed. A failure on the root page
// aborts the routine; a failure on an item page skips that item.
package scrape

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/bloom"
	"golang.org/x/net/html/charset"
)

// Routine names.
const (
	ModeWhatsNew       = "whats-new"
	ModeLatestVersions = "latest-versions"
	ModeDownload       = "download"
	ModePEP            = "pep"
)

// Default source locations.
const (
	DefaultDocURL = "https://docs.python.org/3/"
	DefaultPEPURL = "https://peps.python.org/"
)

// DefaultEncoding is applied to every fetched page.
const DefaultEncoding = "utf-8"

// Modes returns the routine names in display order.
func Modes() []string {
	return []string{ModeWhatsNew, ModeLatestVersions, ModeDownload, ModePEP}
}

// Scraper runs extraction routines against the documentation site and the
// PEP index.
type Scraper struct {
	Fetcher  docscrape.Fetcher
	Parser   docscrape.Parser
	Archives docscrape.ArchiveStore

	// Logger receives per-item error messages and status warnings.
	// Defaults to discarding output.
	Logger *slog.Logger

	// Progress, if set, is called after each item page is processed.
	Progress docscrape.ProgressFunc

	DocURL   string
	PEPURL   string
	Encoding string
}

// Run dispatches to the routine named by mode. The download routine
// returns a nil table.
func (s *Scraper) Run(ctx context.Context, mode string) (*docscrape.Table, error) {
	routines := map[string]func(context.Context) (*docscrape.Table, error){
		ModeWhatsNew:       s.WhatsNew,
		ModeLatestVersions: s.LatestVersions,
		ModeDownload:       s.Download,
		ModePEP:            s.PEP,
	}
	routine, ok := routines[mode]
	if !ok {
		return nil, docscrape.Errorf(docscrape.EINVALID, "unknown mode %q (choose from %s)", mode, strings.Join(Modes(), ", "))
	}
	return routine(ctx)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Scraper) docURL() string {
	if s.DocURL == "" {
		return DefaultDocURL
	}
	return s.DocURL
}

func (s *Scraper) pepURL() string {
	if s.PEPURL == "" {
		return DefaultPEPURL
	}
	return s.PEPURL
}

func (s *Scraper) encoding() string {
	if s.Encoding == "" {
		return DefaultEncoding
	}
	return s.Encoding
}

// fetch returns the raw body of rawURL, reporting failures as FetchError.
func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		var fe *docscrape.FetchError
		if !errors.As(err, &fe) {
			err = &docscrape.FetchError{URL: rawURL, Err: err}
		}
		return nil, err
	}
	return body, nil
}

// page fetches rawURL and decodes it with the configured encoding.
func (s *Scraper) page(ctx context.Context, rawURL string) (string, error) {
	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	r, err := charset.NewReaderLabel(s.encoding(), bytes.NewReader(body))
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "unsupported encoding %q: %v", s.encoding(), err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "failed to decode %s: %v", rawURL, err)
	}
	return string(text), nil
}

// eachPage fetches every URL once, in order, and passes the page to fn.
// Fetch failures and missing elements skip the item; their messages are
// logged together once all items are processed. Any other error aborts.
func (s *Scraper) eachPage(ctx context.Context, mode string, urls []string, fn func(rawURL, html string) error) error {
	seen := bloom.NewSeenSet(len(urls))
	var messages []string

	for i, u := range urls {
		if err := ctx.Err(); err != nil {
			return err
		}
		var err error
		if seen.Visit(u) {
			s.logger().Debug("skipping duplicate item", "mode", mode, "url", u)
		} else {
			err = s.item(ctx, u, fn)
		}
		if s.Progress != nil {
			s.Progress(docscrape.Progress{URL: u, Completed: i + 1, Total: len(urls), Error: err})
		}
		if err == nil {
			continue
		}
		if !skippable(err) {
			return err
		}
		messages = append(messages, "error while processing "+u+": "+err.Error())
	}

	for _, msg := range messages {
		s.logger().Error(msg, "mode", mode)
	}
	s.logger().Debug("items processed",
		"mode", mode,
		"items", len(urls),
		"distinct", seen.Len(),
		"failed", len(messages),
	)
	return nil
}

func (s *Scraper) item(ctx context.Context, rawURL string, fn func(rawURL, html string) error) error {
	html, err := s.page(ctx, rawURL)
	if err != nil {
		return err
	}
	return fn(rawURL, html)
}

func skippable(err error) bool {
	return slices.Contains([]string{docscrape.EFETCH, docscrape.EMISSING}, docscrape.ErrorCode(err))
}

// resolve joins ref onto base the way a browser would.
func resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q: %v", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid URL %q: %v", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}
