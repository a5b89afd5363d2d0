package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Runner runs an extraction routine by mode name.
type Runner interface {
	Run(ctx context.Context, mode string) (*docscrape.Table, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Cache   docscrape.ResponseCache
	Scraper Runner
	Output  docscrape.TableWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode       string        `arg:"" enum:"whats-new,latest-versions,download,pep" help:"Parser mode (${enum})."`
	ClearCache bool          `short:"c" name:"clear-cache" help:"Clear the response cache before running."`
	Output     string        `short:"o" enum:"plain,pretty,file" default:"plain" help:"Output form (${enum})."`
	DocURL     string        `name:"doc-url" env:"DOCSCRAPE_DOC_URL" default:"https://docs.python.org/3/" help:"Documentation root URL."`
	PEPURL     string        `name:"pep-url" env:"DOCSCRAPE_PEP_URL" default:"https://peps.python.org/" help:"PEP index URL."`
	Cache      string        `name:"cache" help:"Response cache database path (default: $DOCSCRAPE_CACHE or ~/.docscrape/cache.db)."`
	BaseDir    string        `name:"base-dir" env:"DOCSCRAPE_DIR" default:"." help:"Directory for results/, downloads/ and logs/."`
	Timeout    time.Duration `short:"t" env:"DOCSCRAPE_TIMEOUT" default:"10s" help:"Fetch timeout per request."`
	Rate       float64       `env:"DOCSCRAPE_RATE" default:"0" help:"Maximum requests per second (0 = unlimited)."`
	Encoding   string        `env:"DOCSCRAPE_ENCODING" default:"utf-8" help:"Text encoding applied to fetched pages."`
	LogLevel   string        `name:"log-level" env:"DOCSCRAPE_LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Log level (${enum})."`
}

// ScrapeCmd runs one extraction routine and outputs its table.
type ScrapeCmd struct {
	Mode       string
	ClearCache bool
}

// Run executes the command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if c.ClearCache {
		if err := deps.Cache.Clear(deps.Ctx); err != nil {
			return err
		}
	}

	table, err := deps.Scraper.Run(deps.Ctx, c.Mode)
	if err != nil {
		return err
	}
	if table == nil {
		return nil
	}
	return deps.Output.WriteTable(deps.Ctx, c.Mode, table)
}
