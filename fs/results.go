package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fwojciec/docscrape"
)

// ResultsDirName is the directory under the base directory for CSV files.
const ResultsDirName = "results"

// resultTimeFormat is used in result file names.
const resultTimeFormat = "2006-01-02_15-04-05"

// Ensure ResultWriter implements docscrape.TableWriter at compile time.
var _ docscrape.TableWriter = (*ResultWriter)(nil)

// ResultWriter saves tables as CSV files named <mode>_<timestamp>.csv.
// The header is the first record.
type ResultWriter struct {
	dir    string
	logger *slog.Logger

	// Now returns the timestamp used in file names. Defaults to time.Now.
	Now func() time.Time
}

// NewResultWriter creates a ResultWriter writing into dir.
// A nil logger discards the "saved" message.
func NewResultWriter(dir string, logger *slog.Logger) *ResultWriter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResultWriter{dir: dir, logger: logger, Now: time.Now}
}

// Path returns the file path a table for mode written at t would get.
func (w *ResultWriter) Path(mode string, t time.Time) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%s.csv", mode, t.Format(resultTimeFormat)))
}

// WriteTable encodes t as CSV and writes it atomically.
func (w *ResultWriter) WriteTable(_ context.Context, mode string, t *docscrape.Table) error {
	if t == nil {
		return nil
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	path := w.Path(mode, w.Now())
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	w.logger.Info("results saved", "path", path, "rows", len(t.Rows))
	return nil
}
