package scrape

import (
	"context"
	"net/url"
	"path"

	"github.com/fwojciec/docscrape"
)

// Download saves the PDF (A4) documentation archive through the
// ArchiveStore. It produces no table.
func (s *Scraper) Download(ctx context.Context) (*docscrape.Table, error) {
	if s.Archives == nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "no archive store configured")
	}

	downloadsURL, err := resolve(s.docURL(), "download.html")
	if err != nil {
		return nil, err
	}
	html, err := s.page(ctx, downloadsURL)
	if err != nil {
		return nil, err
	}
	archiveURL, err := s.Parser.ArchiveLink(html, downloadsURL)
	if err != nil {
		return nil, err
	}

	filename, err := archiveName(archiveURL)
	if err != nil {
		return nil, err
	}

	data, err := s.fetch(ctx, archiveURL)
	if err != nil {
		return nil, err
	}

	archivePath, err := s.Archives.SaveArchive(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	s.logger().Info("archive downloaded and saved", "path", archivePath, "bytes", len(data))
	return nil, nil
}

// archiveName returns the last path segment of the archive URL.
func archiveName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid archive URL %q: %v", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", docscrape.Errorf(docscrape.EINVALID, "archive URL %q has no file name", rawURL)
	}
	return name, nil
}
