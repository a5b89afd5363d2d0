package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

var _ docscrape.Parser = (*Parser)(nil)

var (
	versionPattern = regexp.MustCompile(`Python (?P<version>\d\.\d+) \((?P<status>.*)\)`)
	archivePattern = regexp.MustCompile(`.+pdf-a4\.zip$`)
)

// Parser extracts data from Sphinx-generated Python documentation pages
// and the PEP index.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ReleaseNoteLinks walks section#what-s-new-in-python > div.toctree-wrapper
// and returns the first link of every top-level toctree entry.
func (p *Parser) ReleaseNoteLinks(html, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid page URL: %v", err)
	}
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	section, err := FindTag(doc.Selection, Tag("section", "id", "what-s-new-in-python"))
	if err != nil {
		return nil, err
	}
	wrapper, err := FindTag(section, Tag("div", "class", "toctree-wrapper"))
	if err != nil {
		return nil, err
	}

	var links []string
	var findErr error
	FindAll(wrapper, Tag("li", "class", "toctree-l1")).EachWithBreak(func(_ int, li *goquery.Selection) bool {
		a, err := FindTag(li, Tag("a"))
		if err != nil {
			findErr = err
			return false
		}
		href, _ := a.Attr("href")
		links = append(links, resolve(base, href))
		return true
	})
	if findErr != nil {
		return nil, findErr
	}
	return links, nil
}

// ReleaseNote reads the article heading and the first definition list,
// which holds the editor and author credits.
func (p *Parser) ReleaseNote(html string) (*docscrape.ReleaseNote, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	h1, err := FindTag(doc.Selection, Tag("h1"))
	if err != nil {
		return nil, err
	}
	dl, err := FindTag(doc.Selection, Tag("dl"))
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(h1.Text())
	title = strings.TrimSpace(strings.TrimSuffix(title, "¶"))

	return &docscrape.ReleaseNote{
		Title:   title,
		Editors: strings.TrimSpace(strings.ReplaceAll(dl.Text(), "\n", " ")),
	}, nil
}

// Versions finds the sidebar list containing "All versions" and parses
// each link text as "Python X.Y (status)". Links that don't match keep
// their full text as the version and an empty status.
func (p *Parser) Versions(html string) ([]docscrape.Version, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	sidebar, err := FindTag(doc.Selection, Tag("div", "class", "sphinxsidebarwrapper"))
	if err != nil {
		return nil, err
	}

	list, err := FindTag(sidebar, TagSpec{
		Name: "ul",
		Match: func(s *goquery.Selection) bool {
			return strings.Contains(s.Text(), "All versions")
		},
		Desc: `text contains "All versions"`,
	})
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EMISSING, "nothing found: %s", docscrape.ErrorMessage(err))
	}

	var versions []docscrape.Version
	FindAll(list, Tag("a")).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := a.Text()
		v := docscrape.Version{Link: href, Version: text}
		if m := versionPattern.FindStringSubmatch(text); m != nil {
			v.Version = m[versionPattern.SubexpIndex("version")]
			v.Status = m[versionPattern.SubexpIndex("status")]
		}
		versions = append(versions, v)
	})
	return versions, nil
}

// ArchiveLink locates the PDF (A4) zip link in the download table.
func (p *Parser) ArchiveLink(html, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid page URL: %v", err)
	}
	doc, err := ParseHTML(html)
	if err != nil {
		return "", err
	}

	content, err := FindTag(doc.Selection, Tag("div", "role", "main"))
	if err != nil {
		return "", err
	}
	table, err := FindTag(content, Tag("table", "class", "docutils"))
	if err != nil {
		return "", err
	}
	a, err := FindTag(table, TagSpec{
		Name:         "a",
		AttrPatterns: map[string]*regexp.Regexp{"href": archivePattern},
	})
	if err != nil {
		return "", err
	}

	href, _ := a.Attr("href")
	return resolve(base, href), nil
}

// ProposalRefs reads section#numerical-index. The first row is the table
// header; in every other row the first cell holds the type and status
// letters and the next cell links to the PEP.
func (p *Parser) ProposalRefs(html, pageURL string) ([]docscrape.ProposalRef, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid page URL: %v", err)
	}
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}

	index, err := FindTag(doc.Selection, Tag("section", "id", "numerical-index"))
	if err != nil {
		return nil, err
	}

	rows := FindAll(index, Tag("tr"))
	var refs []docscrape.ProposalRef
	var findErr error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		td, err := FindTag(tr, Tag("td"))
		if err != nil {
			findErr = err
			return false
		}
		a, err := FindTag(td.Next(), Tag("a"))
		if err != nil {
			findErr = err
			return false
		}
		href, _ := a.Attr("href")
		refs = append(refs, docscrape.ProposalRef{
			URL:    resolve(base, href),
			Status: indexStatus(td.Text()),
		})
		return true
	})
	if findErr != nil {
		return nil, findErr
	}
	return refs, nil
}

// ProposalStatus reads the "Status" field from the PEP preamble.
func (p *Parser) ProposalStatus(html string) (string, error) {
	doc, err := ParseHTML(html)
	if err != nil {
		return "", err
	}

	dl, err := FindTag(doc.Selection, Tag("dl"))
	if err != nil {
		return "", err
	}
	statusSpec := TagSpec{
		Name: "dt",
		Match: func(s *goquery.Selection) bool {
			return strings.Contains(s.Text(), "Status")
		},
		Desc: `text contains "Status"`,
	}
	dt, err := FindTag(dl, statusSpec)
	if err != nil {
		return "", err
	}

	dd := dt.Next()
	if dd.Length() == 0 {
		return "", docscrape.Errorf(docscrape.EMISSING, "tag not found: sibling after %s", statusSpec)
	}
	return strings.TrimSpace(dd.Text()), nil
}

// indexStatus returns the status letter from a type/status cell such as
// "SF". A cell with only the type letter has no status.
func indexStatus(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) < 2 {
		return ""
	}
	return cell[1:2]
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
