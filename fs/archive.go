package fs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/docscrape"
)

// DownloadsDirName is the directory under the base directory for archives.
const DownloadsDirName = "downloads"

// Ensure ArchiveStore implements docscrape.ArchiveStore at compile time.
var _ docscrape.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore writes downloaded archives unmodified into a directory.
type ArchiveStore struct {
	dir string
}

// NewArchiveStore creates an ArchiveStore writing into dir.
func NewArchiveStore(dir string) *ArchiveStore {
	return &ArchiveStore{dir: dir}
}

// SaveArchive writes data to dir/filename, replacing any existing file.
// filename must be a bare file name.
func (s *ArchiveStore) SaveArchive(_ context.Context, filename string, data []byte) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filepath.Base(filename) != filename {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid archive file name %q", filename)
	}

	path := filepath.Join(s.dir, filename)
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to save archive: %w", err)
	}
	return path, nil
}
