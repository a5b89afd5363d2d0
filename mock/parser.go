package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.Parser = (*Parser)(nil)

// Parser is a mock implementation of docscrape.Parser.
type Parser struct {
	ReleaseNoteLinksFn func(html, pageURL string) ([]string, error)
	ReleaseNoteFn      func(html string) (*docscrape.ReleaseNote, error)
	VersionsFn         func(html string) ([]docscrape.Version, error)
	ArchiveLinkFn      func(html, pageURL string) (string, error)
	ProposalRefsFn     func(html, pageURL string) ([]docscrape.ProposalRef, error)
	ProposalStatusFn   func(html string) (string, error)
}

func (p *Parser) ReleaseNoteLinks(html, pageURL string) ([]string, error) {
	return p.ReleaseNoteLinksFn(html, pageURL)
}

func (p *Parser) ReleaseNote(html string) (*docscrape.ReleaseNote, error) {
	return p.ReleaseNoteFn(html)
}

func (p *Parser) Versions(html string) ([]docscrape.Version, error) {
	return p.VersionsFn(html)
}

func (p *Parser) ArchiveLink(html, pageURL string) (string, error) {
	return p.ArchiveLinkFn(html, pageURL)
}

func (p *Parser) ProposalRefs(html, pageURL string) ([]docscrape.ProposalRef, error) {
	return p.ProposalRefsFn(html, pageURL)
}

func (p *Parser) ProposalStatus(html string) (string, error) {
	return p.ProposalStatusFn(html)
}
