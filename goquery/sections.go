// Package goquery implements HTML section extraction using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/geogap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultBoundaries lists the elements that end a section in addition to
// headings.
var DefaultBoundaries = []string{"footer"}

// Ensure SectionExtractor implements geogap.SectionExtractor at compile time.
var _ geogap.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor splits HTML into sections delimited by h1, h2 and h3
// elements. A section's text is the text content of the heading's following
// sibling elements, up to the next heading or boundary element.
type SectionExtractor struct {
	boundaries map[string]bool
}

// Option configures a SectionExtractor.
type Option func(*SectionExtractor)

// WithBoundaries replaces the trailing boundary elements.
// Defaults to DefaultBoundaries if not specified.
func WithBoundaries(tags ...string) Option {
	return func(e *SectionExtractor) {
		e.boundaries = make(map[string]bool, len(tags))
		for _, tag := range tags {
			e.boundaries[strings.ToLower(tag)] = true
		}
	}
}

// NewSectionExtractor creates a new SectionExtractor.
func NewSectionExtractor(opts ...Option) *SectionExtractor {
	e := &SectionExtractor{}
	WithBoundaries(DefaultBoundaries...)(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses HTML and returns one section per heading in document order.
func (e *SectionExtractor) Extract(rawHTML string) ([]geogap.Section, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, geogap.Errorf(geogap.EINVALID, "failed to parse HTML: %v", err)
	}

	sections := []geogap.Section{}
	doc.Find("h1, h2, h3").Each(func(_ int, h *goquery.Selection) {
		node := h.Get(0)

		var parts []string
		for sib := range e.following(node) {
			if text := strings.TrimSpace(nodeText(sib)); text != "" {
				parts = append(parts, text)
			}
		}

		sections = append(sections, geogap.NewSection(headingLevel(node), h.Text(), strings.Join(parts, " ")))
	})

	return sections, nil
}

// following yields the element siblings after n, stopping before the first
// heading or boundary element.
func (e *SectionExtractor) following(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if e.isBoundary(sib) {
				return
			}
			if !yield(sib) {
				return
			}
		}
	}
}

func (e *SectionExtractor) isBoundary(n *html.Node) bool {
	return headingLevel(n) > 0 || e.boundaries[n.Data]
}

// headingLevel returns 1, 2 or 3 for h1-h3 elements and 0 otherwise.
func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	}
	return 0
}

// nodeText returns the concatenated text of all text nodes under n.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
