package geogap

import (
	"fmt"
	"strings"
)

// FormatReport renders an analysis result as plain text for terminal output.
func FormatReport(r *AnalysisResult) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Question: %s\n", r.Question)
	fmt.Fprintf(&sb, "Detected format: %s\n", r.DetectedFormat)

	for i, page := range r.ExtractedData {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "[%s] %s\n", page.Role, page.URL)
		if page.FetchFailed {
			sb.WriteString("  fetch failed\n")
			continue
		}
		fmt.Fprintf(&sb, "  sections: %d\n", len(page.Sections))
		if i >= len(r.Analysis) {
			continue
		}
		a := r.Analysis[i]
		fmt.Fprintf(&sb, "  avg words: %.1f\n", a.AvgWordCount)
		if len(a.MissingSections) > 0 {
			fmt.Fprintf(&sb, "  missing: %s\n", strings.Join(a.MissingSections, ", "))
		}
		if a.StructureMismatch {
			sb.WriteString("  structure mismatch\n")
		}
	}

	sb.WriteString("\nRecommendations:\n")
	if len(r.Recommendations) == 0 {
		sb.WriteString("  none\n")
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&sb, "  - %s: %s\n", rec.Issue, rec.Message)
	}

	fmt.Fprintf(&sb, "\nProcessed in %dms\n", r.ProcessingTimeMs)
	return sb.String()
}
