// Package gopretty renders tables for the console using
// github.com/jedib0t/go-pretty.
package gopretty

import (
	"context"
	"io"

	"github.com/fwojciec/docscrape"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Ensure TableWriter implements docscrape.TableWriter at compile time.
var _ docscrape.TableWriter = (*TableWriter)(nil)

// TableWriter draws a boxed, left-aligned table with the header as given.
type TableWriter struct {
	w io.Writer
}

// NewTableWriter creates a TableWriter that renders to w.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

// WriteTable renders t. The mode is not shown.
func (tw *TableWriter) WriteTable(_ context.Context, _ string, t *docscrape.Table) error {
	if t == nil {
		return nil
	}

	pt := table.NewWriter()
	pt.SetOutputMirror(tw.w)

	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	pt.SetStyle(style)

	configs := make([]table.ColumnConfig, 0, len(t.Header))
	for i := range t.Header {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	pt.SetColumnConfigs(configs)

	pt.AppendHeader(toRow(t.Header))
	for _, r := range t.Rows {
		pt.AppendRow(toRow(r))
	}
	pt.Render()
	return nil
}

func toRow(r docscrape.Row) table.Row {
	row := make(table.Row, len(r))
	for i, v := range r {
		row[i] = v
	}
	return row
}
