// Package gemini implements geogap.Generator using Google Gemini through
// google.golang.org/genai.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/geogap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements geogap.Generator at compile time.
var _ geogap.Generator = (*Generator)(nil)

// Generator implements geogap.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. A nil client yields a Generator
// that reports a missing credential on every call.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient connects to the Gemini API. An empty key returns a nil client
// and no error so that generation degrades instead of failing startup.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Generate sends prompt as a single user turn.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", geogap.Errorf(geogap.EUNAUTHORIZED, "GEMINI_API_KEY is not set")
	}
	if prompt == "" {
		return "", geogap.Errorf(geogap.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", geogap.Errorf(geogap.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return geogap.NoResponseText, nil
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(geogap.Temperature)
	return &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: geogap.MaxOutputTokens,
	}
}
