package scrape

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// LatestVersions lists documentation versions and their release status
// from the sidebar of the documentation home page.
func (s *Scraper) LatestVersions(ctx context.Context) (*docscrape.Table, error) {
	html, err := s.page(ctx, s.docURL())
	if err != nil {
		return nil, err
	}
	versions, err := s.Parser.Versions(html)
	if err != nil {
		return nil, err
	}

	table := docscrape.NewTable("Link to documentation", "Version", "Status")
	for _, v := range versions {
		table.Append(v.Link, v.Version, v.Status)
	}
	return table, nil
}
