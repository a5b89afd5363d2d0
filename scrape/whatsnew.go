package scrape

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// WhatsNew lists the "What's New" article of every Python release with its
// title and editor credits.
func (s *Scraper) WhatsNew(ctx context.Context) (*docscrape.Table, error) {
	indexURL, err := resolve(s.docURL(), "whatsnew/")
	if err != nil {
		return nil, err
	}
	html, err := s.page(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	links, err := s.Parser.ReleaseNoteLinks(html, indexURL)
	if err != nil {
		return nil, err
	}

	table := docscrape.NewTable("Link to article", "Title", "Editor, author")
	err = s.eachPage(ctx, ModeWhatsNew, links, func(link, html string) error {
		note, err := s.Parser.ReleaseNote(html)
		if err != nil {
			return err
		}
		table.Append(link, note.Title, note.Editors)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
