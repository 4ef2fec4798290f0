package geogap

// PageRole distinguishes the page being evaluated from its competitors.
type PageRole string

// PageRole constants.
const (
	RoleTarget    PageRole = "target"
	RoleReference PageRole = "reference"
)

// PageSource identifies a page and the role it plays in an analysis.
type PageSource struct {
	URL  string   `json:"url"`
	Role PageRole `json:"type"`
}

// ExtractedPage holds the sections extracted from one page.
// FetchFailed is set when the page could not be retrieved or parsed; such a
// page always has an empty section list.
type ExtractedPage struct {
	PageSource
	Sections    []Section `json:"sections"`
	FetchFailed bool      `json:"fetchFailed"`
}

// NewFailedPage returns the page recorded when retrieval or parsing fails.
func NewFailedPage(src PageSource) ExtractedPage {
	return ExtractedPage{
		PageSource:  src,
		Sections:    []Section{},
		FetchFailed: true,
	}
}

// IsTarget reports whether the page is the target of the analysis.
func (p *ExtractedPage) IsTarget() bool {
	return p.Role == RoleTarget
}
