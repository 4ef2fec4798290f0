package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/geogap"
	"github.com/fwojciec/geogap/analyze"
	"github.com/fwojciec/geogap/gemini"
	"github.com/fwojciec/geogap/goquery"
	geogaphttp "github.com/fwojciec/geogap/http"
	"github.com/fwojciec/geogap/openai"
	"github.com/fwojciec/geogap/rod"
	geoslog "github.com/fwojciec/geogap/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher opened by Run. Closed by Close.
	Fetcher geogap.Fetcher

	// Service for end-to-end testing. When set, Run skips wiring the
	// analyzer and uses it directly.
	AnalysisService geogap.AnalysisService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("geogap"),
		kong.Description("Compare a page's structure with an AI-generated answer and its competitors."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'geogap --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.AnalysisService == nil {
		analyzer, err := m.wire(ctx, &cli.Globals, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		m.AnalysisService = analyzer
	}
	deps.Analysis = m.AnalysisService

	return kongCtx.Run(deps)
}

// wire builds the analyzer from global flags.
func (m *Main) wire(ctx context.Context, g *Globals, logger *slog.Logger, stderr io.Writer) (*analyze.Analyzer, error) {
	var fetcher geogap.Fetcher
	if g.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(g.FetchTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = geogaphttp.NewFetcher(geogaphttp.WithTimeout(g.FetchTimeout))
	}

	generator, err := newGenerator(ctx, g, stderr)
	if err != nil {
		_ = fetcher.Close()
		return nil, err
	}

	if g.Verbose {
		fetcher = geoslog.NewLoggingFetcher(fetcher, logger)
		generator = geoslog.NewLoggingGenerator(generator, logger)
	}
	m.Fetcher = fetcher

	return &analyze.Analyzer{
		Fetcher:         fetcher,
		Extractor:       goquery.NewSectionExtractor(),
		Generator:       generator,
		FetchTimeout:    g.FetchTimeout,
		GenerateTimeout: g.GenerateTimeout,
		Concurrency:     g.Concurrency,
		DomainRPS:       g.DomainRPS,
	}, nil
}

// newGenerator returns the generator for the selected provider. A missing
// API key is not fatal: the generator reports it on every call and the
// analysis falls back to the placeholder answer.
func newGenerator(ctx context.Context, g *Globals, stderr io.Writer) (geogap.Generator, error) {
	switch g.Provider {
	case ProviderGemini:
		if g.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "warning: GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
		}
		client, err := gemini.NewClient(ctx, g.GeminiAPIKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, modelOr(g.Model, gemini.DefaultModel)), nil
	default:
		if g.GroqAPIKey == "" {
			fmt.Fprintln(stderr, "warning: GROQ_API_KEY not set. Get an API key at https://console.groq.com/keys")
		}
		return openai.NewGenerator(g.GroqAPIKey,
			openai.WithBaseURL(g.BaseURL),
			openai.WithModel(modelOr(g.Model, openai.DefaultModel)),
		), nil
	}
}

func modelOr(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}
