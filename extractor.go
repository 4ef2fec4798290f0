package geogap

// SectionExtractor splits a page into heading-delimited sections.
type SectionExtractor interface {
	// Extract parses raw HTML and returns its sections in document order.
	// A page without headings yields an empty slice and a nil error.
	Extract(html string) ([]Section, error)
}
