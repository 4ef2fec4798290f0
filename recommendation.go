package geogap

// LongSectionWords is the average section length above which sections are
// reported as too long.
const LongSectionWords = 150

// Recommendation is a human-readable fix for one structural gap.
type Recommendation struct {
	Issue   string `json:"issue"`
	Message string `json:"recommendation"`
}

// Recommendation catalog.
var (
	RecommendFAQs = Recommendation{
		Issue:   "Missing FAQs",
		Message: "Add 3–5 FAQs answering common user questions.",
	}
	RecommendBenefits = Recommendation{
		Issue:   "Missing Benefits Section",
		Message: "Add a section highlighting the key benefits clearly.",
	}
	RecommendSteps = Recommendation{
		Issue:   "Missing Step-by-Step Explanation",
		Message: "Include a beginner-friendly step-by-step guide.",
	}
	RecommendBullets = Recommendation{
		Issue:   "Long Paragraphs Detected",
		Message: "Break long paragraphs into bullet points for better AI readability.",
	}
	RecommendShorterSections = Recommendation{
		Issue:   "Sections Too Long",
		Message: "Shorten sections or split them into sub-sections.",
	}
	RecommendDefinition = Recommendation{
		Issue:   "No Clear Definition Early",
		Message: "Add a concise definition in the first 200 words.",
	}
)

// Recommend maps the target page's gaps to recommendations. Conditions are
// independent and evaluated in catalog order.
func Recommend(a PageAnalysis) []Recommendation {
	recs := []Recommendation{}
	if a.HasMissing(MissingFAQs) {
		recs = append(recs, RecommendFAQs)
	}
	if a.HasMissing(MissingBenefits) {
		recs = append(recs, RecommendBenefits)
	}
	if a.HasMissing(MissingSteps) {
		recs = append(recs, RecommendSteps)
	}
	if a.StructureMismatch {
		recs = append(recs, RecommendBullets)
	}
	if a.AvgWordCount > LongSectionWords {
		recs = append(recs, RecommendShorterSections)
	}
	if a.MissingDefinition {
		recs = append(recs, RecommendDefinition)
	}
	return recs
}
