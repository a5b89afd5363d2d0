package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/docscrape"
)

// PEP counts PEPs by the status shown on each PEP page. Pages whose status
// disagrees with the letter in the numerical index are logged as warnings
// and still counted by their page status.
func (s *Scraper) PEP(ctx context.Context) (*docscrape.Table, error) {
	indexURL := s.pepURL()
	html, err := s.page(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	refs, err := s.Parser.ProposalRefs(html, indexURL)
	if err != nil {
		return nil, err
	}

	indexStatus := make(map[string]string, len(refs))
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		indexStatus[ref.URL] = ref.Status
		urls = append(urls, ref.URL)
	}

	tally := docscrape.NewStatusTally()
	err = s.eachPage(ctx, ModePEP, urls, func(pepURL, html string) error {
		status, err := s.Parser.ProposalStatus(html)
		if err != nil {
			return err
		}
		tally.Add(status)

		abbr := indexStatus[pepURL]
		if !docscrape.StatusMatches(abbr, status) {
			s.logger().Warn("mismatched status",
				"url", pepURL,
				"status", status,
				"expected", strings.Join(docscrape.StatusAbbreviations[abbr], "|"),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tally.Table(), nil
}
