// Package openai implements geogap.Generator against OpenAI-compatible chat
// completion APIs using github.com/sashabaranov/go-openai. It defaults to
// Groq's endpoint.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/geogap"
	"github.com/sashabaranov/go-openai"
)

// Groq defaults.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"
)

// Ensure Generator implements geogap.Generator at compile time.
var _ geogap.Generator = (*Generator)(nil)

// Generator implements geogap.Generator using a chat completion endpoint.
type Generator struct {
	client *openai.Client
	model  string
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	baseURL string
	model   string
}

// WithBaseURL overrides the API base URL.
// Defaults to DefaultBaseURL if not specified.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithModel sets the model name.
// Defaults to DefaultModel if not specified.
func WithModel(m string) Option {
	return func(o *options) {
		if m != "" {
			o.model = m
		}
	}
}

// NewGenerator creates a new Generator. An empty apiKey yields a Generator
// that reports a missing credential on every call.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	o := options{baseURL: DefaultBaseURL, model: DefaultModel}
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{model: o.model}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = o.baseURL
		g.client = openai.NewClientWithConfig(cfg)
	}
	return g
}

// Generate sends prompt as a single user message.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", geogap.Errorf(geogap.EUNAUTHORIZED, "GROQ_API_KEY is not set")
	}
	if prompt == "" {
		return "", geogap.Errorf(geogap.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return geogap.NoResponseText, nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return geogap.NoResponseText, nil
	}
	return text, nil
}

// BuildRequest returns the chat completion request for prompt.
func BuildRequest(model, prompt string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   geogap.MaxOutputTokens,
		Temperature: geogap.Temperature,
	}
}
