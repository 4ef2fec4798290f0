package geogap

import (
	"strings"
	"unicode/utf8"
)

// Section kinds reported in PageAnalysis.MissingSections.
const (
	MissingFAQs     = "FAQs"
	MissingBenefits = "Benefits"
	MissingSteps    = "Steps"
)

// Thresholds used by the gap rules.
const (
	// BulletMismatchWords is the average section length above which a page
	// is considered too dense for a bullet-point answer.
	BulletMismatchWords = 120

	// DefinitionMinChars is the minimum length of the first section of the
	// target before it can count as an early definition.
	DefinitionMinChars = 200
)

// PageAnalysis holds the structural gaps found on one page.
type PageAnalysis struct {
	PageSource
	MissingSections   []string `json:"missingSections"`
	AvgWordCount      float64  `json:"avgWordCount"`
	StructureMismatch bool     `json:"structureMismatch"`

	// MissingDefinition is only ever set for the target page.
	MissingDefinition bool `json:"missingDefinition"`
}

// HasMissing reports whether kind is listed in MissingSections.
func (a *PageAnalysis) HasMissing(kind string) bool {
	for _, s := range a.MissingSections {
		if s == kind {
			return true
		}
	}
	return false
}

// AnalyzePage compares the page's sections with the exemplar answer.
// The question is only used for the early-definition check, which applies to
// the target page alone.
func AnalyzePage(page ExtractedPage, ref ReferenceAnswer, question string) PageAnalysis {
	headings := make([]string, len(page.Sections))
	for i, s := range page.Sections {
		headings[i] = strings.ToLower(s.Heading)
	}

	a := PageAnalysis{
		PageSource:      page.PageSource,
		MissingSections: []string{},
		AvgWordCount:    AverageWordCount(page.Sections),
	}

	if ref.Format == FormatFAQ && !anyContains(headings, "faq") {
		a.MissingSections = append(a.MissingSections, MissingFAQs)
	}
	if strings.Contains(strings.ToLower(ref.Text), "benefit") && !anyContains(headings, "benefit") {
		a.MissingSections = append(a.MissingSections, MissingBenefits)
	}
	if ref.Format == FormatStepList && !anyContains(headings, "step", "how") {
		a.MissingSections = append(a.MissingSections, MissingSteps)
	}

	a.StructureMismatch = ref.Format == FormatBulletList && a.AvgWordCount > BulletMismatchWords

	if page.IsTarget() && len(page.Sections) > 0 {
		a.MissingDefinition = lacksEarlyDefinition(page.Sections[0].Text, question)
	}

	return a
}

// AverageWordCount returns the mean word count of sections, or 0 when there
// are none.
func AverageWordCount(sections []Section) float64 {
	if len(sections) == 0 {
		return 0
	}
	var total int
	for _, s := range sections {
		total += s.WordCount
	}
	return float64(total) / float64(len(sections))
}

// lacksEarlyDefinition reports whether the first section text fails to define
// the subject of question.
func lacksEarlyDefinition(text, question string) bool {
	first := strings.ToLower(text)
	if utf8.RuneCountInString(first) < DefinitionMinChars {
		return true
	}
	if strings.Contains(first, "definition") {
		return false
	}
	for _, k := range strings.Fields(strings.ToLower(question)) {
		if strings.Contains(first, k) {
			return false
		}
	}
	return true
}

// anyContains reports whether any of the haystacks contains any of the needles.
func anyContains(haystacks []string, needles ...string) bool {
	for _, h := range haystacks {
		for _, n := range needles {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}
