package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var (
	_ docscrape.TableWriter  = (*TableWriter)(nil)
	_ docscrape.ArchiveStore = (*ArchiveStore)(nil)
)

// TableWriter is a mock implementation of docscrape.TableWriter.
type TableWriter struct {
	WriteTableFn func(ctx context.Context, mode string, t *docscrape.Table) error
}

func (w *TableWriter) WriteTable(ctx context.Context, mode string, t *docscrape.Table) error {
	return w.WriteTableFn(ctx, mode, t)
}

// ArchiveStore is a mock implementation of docscrape.ArchiveStore.
type ArchiveStore struct {
	SaveArchiveFn func(ctx context.Context, filename string, data []byte) (string, error)
}

func (s *ArchiveStore) SaveArchive(ctx context.Context, filename string, data []byte) (string, error) {
	return s.SaveArchiveFn(ctx, filename, data)
}
