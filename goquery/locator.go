// Package goquery implements HTML element lookup and the documentation page
// parsers on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// TagSpec describes the element to locate.
// Name is required. Attrs match exactly; a "class" entry matches when the
// element's class list contains the value. AttrPatterns match attribute
// values by regular expression. Match is an optional extra predicate.
type TagSpec struct {
	Name         string
	Attrs        map[string]string
	AttrPatterns map[string]*regexp.Regexp
	Match        func(*goquery.Selection) bool

	// Desc names the predicate in error messages.
	Desc string
}

// Tag returns a TagSpec for name with alternating attribute key/value pairs.
func Tag(name string, attrs ...string) TagSpec {
	spec := TagSpec{Name: name}
	if len(attrs) > 0 {
		spec.Attrs = make(map[string]string, len(attrs)/2)
		for i := 0; i+1 < len(attrs); i += 2 {
			spec.Attrs[attrs[i]] = attrs[i+1]
		}
	}
	return spec
}

// String formats the spec for diagnostics, e.g. `div {class="toctree-wrapper"}`.
func (s TagSpec) String() string {
	var parts []string
	for _, k := range slices.Sorted(maps.Keys(s.Attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%q", k, s.Attrs[k]))
	}
	for _, k := range slices.Sorted(maps.Keys(s.AttrPatterns)) {
		parts = append(parts, fmt.Sprintf("%s~/%s/", k, s.AttrPatterns[k]))
	}
	if s.Match != nil {
		desc := s.Desc
		if desc == "" {
			desc = "predicate"
		}
		parts = append(parts, desc)
	}
	if len(parts) == 0 {
		return s.Name
	}
	return s.Name + " {" + strings.Join(parts, ", ") + "}"
}

func (s TagSpec) matches(sel *goquery.Selection) bool {
	for k, v := range s.Attrs {
		if k == "class" {
			if !sel.HasClass(v) {
				return false
			}
			continue
		}
		if got, ok := sel.Attr(k); !ok || got != v {
			return false
		}
	}
	for k, re := range s.AttrPatterns {
		got, ok := sel.Attr(k)
		if !ok || !re.MatchString(got) {
			return false
		}
	}
	if s.Match != nil && !s.Match(sel) {
		return false
	}
	return true
}

// FindTag returns the first descendant of sel matching spec, in document
// order. It fails with EMISSING naming the spec when nothing matches.
func FindTag(sel *goquery.Selection, spec TagSpec) (*goquery.Selection, error) {
	found := sel.Find(spec.Name).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return spec.matches(s)
	}).First()
	if found.Length() == 0 {
		return nil, docscrape.Errorf(docscrape.EMISSING, "tag not found: %s", spec)
	}
	return found, nil
}

// FindAll returns every descendant of sel matching spec. An empty result is
// not an error.
func FindAll(sel *goquery.Selection, spec TagSpec) *goquery.Selection {
	return sel.Find(spec.Name).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return spec.matches(s)
	})
}

// ParseHTML parses an HTML document.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
