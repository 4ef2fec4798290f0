package geogap

import (
	"context"
	"fmt"
)

// Sampling parameters used for every exemplar answer request.
const (
	MaxOutputTokens = 1024
	Temperature     = 0.7
)

// ReferencePlaceholder replaces the exemplar answer when the generative-text
// service cannot be reached or is not configured.
const ReferencePlaceholder = "AI analysis unavailable - please check your API key"

// NoResponseText is returned by generators when the service answers without
// any content.
const NoResponseText = "No response generated"

// Generator produces text from a prompt using an external generative-text
// service.
type Generator interface {
	// Generate sends a single completion request and returns the text.
	// Returns EUNAUTHORIZED if no credential is configured.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReferencePrompt builds the prompt asking for a beginner-level exemplar
// answer to question.
func ReferencePrompt(question string) string {
	return fmt.Sprintf("Explain %s for beginners. Use clear sections, examples, and simple language.", question)
}

// ReferenceAnswer is the exemplar answer and its detected format.
type ReferenceAnswer struct {
	Text   string
	Format FormatKind
}

// NewReferenceAnswer classifies text and returns it as a ReferenceAnswer.
func NewReferenceAnswer(text string) ReferenceAnswer {
	return ReferenceAnswer{Text: text, Format: ClassifyFormat(text)}
}

// UnavailableReference is the answer used when generation fails.
func UnavailableReference() ReferenceAnswer {
	return ReferenceAnswer{Text: ReferencePlaceholder, Format: FormatUnknown}
}
