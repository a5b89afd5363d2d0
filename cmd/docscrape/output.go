package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/gopretty"
)

// plainWriter prints each row with fields separated by spaces.
type plainWriter struct {
	w io.Writer
}

func (p *plainWriter) WriteTable(_ context.Context, _ string, t *docscrape.Table) error {
	_, err := fmt.Fprint(p.w, docscrape.FormatTable(t))
	return err
}

// newOutput selects the table writer for an output form.
func newOutput(form, baseDir string, stdout io.Writer, logger *slog.Logger) docscrape.TableWriter {
	switch form {
	case "pretty":
		return gopretty.NewTableWriter(stdout)
	case "file":
		return fs.NewResultWriter(filepath.Join(baseDir, fs.ResultsDirName), logger)
	default:
		return &plainWriter{w: stdout}
	}
}

// progressPrinter renders item progress on a single terminal line.
func progressPrinter(w io.Writer, mode string) docscrape.ProgressFunc {
	return func(p docscrape.Progress) {
		fmt.Fprintf(w, "\r%s: %d/%d", mode, p.Completed, p.Total)
		if p.Completed == p.Total {
			fmt.Fprintln(w)
		}
	}
}
