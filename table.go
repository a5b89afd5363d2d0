package docscrape

import (
	"context"
	"strings"
)

// Row is an ordered tuple of display strings.
type Row []string

// Table is a header row followed by data rows.
type Table struct {
	Header Row
	Rows   []Row
}

// NewTable returns an empty table with the given column headers.
func NewTable(header ...string) *Table {
	return &Table{Header: Row(header)}
}

// Append adds a row built from the given fields.
func (t *Table) Append(fields ...string) {
	t.Rows = append(t.Rows, Row(fields))
}

// Records returns the header followed by all rows.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	for _, r := range t.Rows {
		records = append(records, r)
	}
	return records
}

// FormatTable renders the table as plain text, one line per row with
// fields separated by a single space. The header comes first.
func FormatTable(t *Table) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range t.Records() {
		b.WriteString(strings.Join(r, " "))
		b.WriteString("\n")
	}
	return b.String()
}

// TableWriter outputs a table produced by an extraction routine.
// The mode names the routine and may be used to derive file names.
type TableWriter interface {
	WriteTable(ctx context.Context, mode string, t *Table) error
}

// ArchiveStore persists a downloaded archive unmodified.
// It returns the path the archive was written to.
type ArchiveStore interface {
	SaveArchive(ctx context.Context, filename string, data []byte) (path string, err error)
}
