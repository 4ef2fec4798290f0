package geogap

import "context"

// InvalidRequestMessage is the fixed message returned for malformed requests.
const InvalidRequestMessage = "Invalid request payload"

// AnalysisRequest asks for the target page to be compared against the
// reference pages for a question.
type AnalysisRequest struct {
	Question      string   `json:"question"`
	TargetURL     string   `json:"targetUrl"`
	ReferenceURLs []string `json:"referenceUrls"`
}

// Validate returns EINVALID if any field is missing or no reference URLs
// are given.
func (r *AnalysisRequest) Validate() error {
	if r.Question == "" || r.TargetURL == "" || len(r.ReferenceURLs) == 0 {
		return Errorf(EINVALID, InvalidRequestMessage)
	}
	return nil
}

// Sources returns the pages to analyze: the target first, then references
// in submitted order.
func (r *AnalysisRequest) Sources() []PageSource {
	sources := make([]PageSource, 0, len(r.ReferenceURLs)+1)
	sources = append(sources, PageSource{URL: r.TargetURL, Role: RoleTarget})
	for _, u := range r.ReferenceURLs {
		sources = append(sources, PageSource{URL: u, Role: RoleReference})
	}
	return sources
}

// AnalysisResult is the outcome of an analysis. ExtractedData and Analysis
// are index-aligned with AnalysisRequest.Sources.
type AnalysisResult struct {
	Question         string           `json:"question"`
	TargetURL        string           `json:"targetUrl"`
	ReferenceURLs    []string         `json:"referenceUrls"`
	DetectedFormat   FormatKind       `json:"detectedFormat"`
	AIAnswer         string           `json:"aiAnswer"`
	ExtractedData    []ExtractedPage  `json:"extractedData"`
	Analysis         []PageAnalysis   `json:"analysis"`
	Recommendations  []Recommendation `json:"recommendations"`
	ProcessingTimeMs int64            `json:"processingTimeMs"`
}

// Target returns the analysis of the target page, or nil if there is none.
func (r *AnalysisResult) Target() *PageAnalysis {
	for i := range r.Analysis {
		if r.Analysis[i].Role == RoleTarget {
			return &r.Analysis[i]
		}
	}
	return nil
}

// AnalysisService runs the content-gap pipeline.
type AnalysisService interface {
	// Analyze runs the pipeline for req.
	// Returns EINVALID if the request fails validation. Retrieval and
	// generation failures are absorbed into the result.
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}
