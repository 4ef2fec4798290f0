package mock

import "github.com/fwojciec/geogap"

var _ geogap.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of geogap.SectionExtractor.
type SectionExtractor struct {
	ExtractFn func(html string) ([]geogap.Section, error)
}

func (e *SectionExtractor) Extract(html string) ([]geogap.Section, error) {
	return e.ExtractFn(html)
}
