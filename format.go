package geogap

import (
	"regexp"
	"strings"
)

// FormatKind is the rhetorical format of an exemplar answer.
type FormatKind string

// FormatKind constants.
const (
	FormatFAQ        FormatKind = "FAQs"
	FormatStepList   FormatKind = "steps"
	FormatBulletList FormatKind = "bullet points"
	FormatParagraph  FormatKind = "paragraph"
	FormatUnknown    FormatKind = "unknown"
)

var (
	numberedRe = regexp.MustCompile(`\d\.`)
	bulletRe   = regexp.MustCompile(`[-•*]\s`)
)

// ClassifyFormat detects the format of text. Rules are evaluated in order and
// the first match wins: FAQ, numbered steps, bullets, then paragraph.
func ClassifyFormat(text string) FormatKind {
	switch {
	case strings.Contains(strings.ToLower(text), "faq"):
		return FormatFAQ
	case numberedRe.MatchString(text):
		return FormatStepList
	case bulletRe.MatchString(text):
		return FormatBulletList
	default:
		return FormatParagraph
	}
}
