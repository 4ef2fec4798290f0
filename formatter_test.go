package geogap_test

import (
	"testing"

	"github.com/fwojciec/geogap"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, geogap.FormatReport(nil))
	})

	t.Run("renders pages and recommendations", func(t *testing.T) {
		t.Parallel()

		targetSrc := geogap.PageSource{URL: "https://t.example", Role: geogap.RoleTarget}
		refSrc := geogap.PageSource{URL: "https://r.example", Role: geogap.RoleReference}
		result := &geogap.AnalysisResult{
			Question:       "What is GEO?",
			DetectedFormat: geogap.FormatFAQ,
			ExtractedData: []geogap.ExtractedPage{
				{PageSource: targetSrc, Sections: []geogap.Section{{Heading: "Intro", Level: 1, WordCount: 4}}},
				geogap.NewFailedPage(refSrc),
			},
			Analysis: []geogap.PageAnalysis{
				{PageSource: targetSrc, MissingSections: []string{"FAQs"}, AvgWordCount: 4},
				{PageSource: refSrc, MissingSections: []string{"FAQs"}},
			},
			Recommendations:  []geogap.Recommendation{geogap.RecommendFAQs},
			ProcessingTimeMs: 42,
		}

		expected := "Question: What is GEO?\n" +
			"Detected format: FAQs\n" +
			"\n[target] https://t.example\n" +
			"  sections: 1\n" +
			"  avg words: 4.0\n" +
			"  missing: FAQs\n" +
			"\n[reference] https://r.example\n" +
			"  fetch failed\n" +
			"\nRecommendations:\n" +
			"  - Missing FAQs: Add 3–5 FAQs answering common user questions.\n" +
			"\nProcessed in 42ms\n"
		assert.Equal(t, expected, geogap.FormatReport(result))
	})

	t.Run("reports no recommendations", func(t *testing.T) {
		t.Parallel()

		out := geogap.FormatReport(&geogap.AnalysisResult{Question: "q", DetectedFormat: geogap.FormatParagraph})

		assert.Contains(t, out, "Recommendations:\n  none\n")
	})
}
