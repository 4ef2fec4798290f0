package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/geogap"
	"github.com/fwojciec/geogap/analyze"
	"github.com/fwojciec/geogap/openai"
)

// Generative providers accepted by --provider.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analysis geogap.AnalysisService
}

// Globals are flags shared by every command.
type Globals struct {
	Provider        string        `enum:"groq,gemini" default:"groq" env:"GEOGAP_PROVIDER" help:"Generative provider (groq or gemini)"`
	Model           string        `env:"GEOGAP_MODEL" help:"Model name (defaults to the provider's default)"`
	BaseURL         string        `name:"base-url" env:"GEOGAP_BASE_URL" default:"${base_url}" help:"OpenAI-compatible endpoint for the groq provider"`
	GroqAPIKey      string        `name:"groq-api-key" env:"GROQ_API_KEY" help:"Groq API key"`
	GeminiAPIKey    string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	FetchTimeout    time.Duration `default:"${fetch_timeout}" help:"Timeout for each page retrieval"`
	GenerateTimeout time.Duration `default:"${generate_timeout}" help:"Timeout for the reference answer"`
	Concurrency     int           `short:"c" default:"${concurrency}" help:"Concurrent page retrieval limit"`
	DomainRPS       float64       `name:"domain-rps" default:"0" help:"Requests per second per host (0 disables)"`
	Browser         bool          `help:"Render pages with headless Chrome"`
	Verbose         bool          `short:"v" help:"Log every fetch and generation"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a target page against reference pages"`
	Serve   ServeCmd   `cmd:"" help:"Serve the analysis HTTP API"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Question   string   `arg:"" help:"Question the content should answer"`
	Target     string   `arg:"" help:"URL of the page being optimized"`
	References []string `arg:"" help:"Competitor page URLs"`
	JSON       bool     `name:"json" help:"Print the full result as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":8080" env:"GEOGAP_ADDR" help:"Listen address"`
	CORSOrigins []string `name:"cors-origin" env:"GEOGAP_CORS_ORIGINS" help:"Allowed CORS origins (repeatable, default any)"`
}

// Vars returns the kong interpolation variables used by the flag defaults.
func Vars() kong.Vars {
	return kong.Vars{
		"base_url":         openai.DefaultBaseURL,
		"fetch_timeout":    analyze.DefaultFetchTimeout.String(),
		"generate_timeout": analyze.DefaultGenerateTimeout.String(),
		"concurrency":      strconv.Itoa(analyze.DefaultConcurrency),
	}
}
