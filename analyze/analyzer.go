// Package analyze orchestrates the content-gap pipeline. It fetches the
// target and reference pages concurrently with the exemplar answer request,
// extracts sections, and applies the gap and recommendation rules.
package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/geogap"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when the corresponding Analyzer field is zero.
const (
	DefaultFetchTimeout    = 10 * time.Second
	DefaultGenerateTimeout = 30 * time.Second
	DefaultConcurrency     = 8
)

// Ensure Analyzer implements geogap.AnalysisService at compile time.
var _ geogap.AnalysisService = (*Analyzer)(nil)

// Analyzer runs the pipeline for one request at a time; it holds no state
// between calls and is safe for concurrent use.
type Analyzer struct {
	Fetcher   geogap.Fetcher
	Extractor geogap.SectionExtractor

	// Generator produces the exemplar answer. A nil Generator is treated
	// as an unavailable service.
	Generator geogap.Generator

	FetchTimeout    time.Duration
	GenerateTimeout time.Duration

	// Concurrency bounds parallel page fetches.
	Concurrency int

	// DomainRPS limits requests per second to a single host within one
	// analysis. Zero disables limiting.
	DomainRPS float64

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Analyze validates req and runs the pipeline. Page retrieval and generation
// failures degrade the result. If ctx is canceled, in-flight calls are
// abandoned and ctx's error is returned.
func (a *Analyzer) Analyze(ctx context.Context, req geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
	start := a.now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	sources := req.Sources()
	pages := make([]geogap.ExtractedPage, len(sources))
	var ref geogap.ReferenceAnswer

	var limiter *DomainLimiter
	if a.DomainRPS > 0 {
		limiter = NewDomainLimiter(a.DomainRPS)
	}

	var g errgroup.Group
	// One extra slot so the generator call never waits behind page fetches.
	g.SetLimit(a.concurrency() + 1)

	g.Go(func() error {
		ref = a.reference(ctx, req.Question)
		return nil
	})
	for i, src := range sources {
		g.Go(func() error {
			pages[i] = a.extractPage(ctx, limiter, src)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analyses := make([]geogap.PageAnalysis, len(pages))
	for i, page := range pages {
		analyses[i] = geogap.AnalyzePage(page, ref, req.Question)
	}

	return &geogap.AnalysisResult{
		Question:         req.Question,
		TargetURL:        req.TargetURL,
		ReferenceURLs:    append([]string(nil), req.ReferenceURLs...),
		DetectedFormat:   ref.Format,
		AIAnswer:         ref.Text,
		ExtractedData:    pages,
		Analysis:         analyses,
		Recommendations:  geogap.Recommend(analyses[0]),
		ProcessingTimeMs: a.now().Sub(start).Milliseconds(),
	}, nil
}

// extractPage fetches and parses one page. Any failure yields a page marked
// as failed with no sections.
func (a *Analyzer) extractPage(ctx context.Context, limiter *DomainLimiter, src geogap.PageSource) geogap.ExtractedPage {
	policy := CallPolicy[geogap.ExtractedPage]{
		Timeout:  a.fetchTimeout(),
		Fallback: func() geogap.ExtractedPage { return geogap.NewFailedPage(src) },
	}

	return policy.Do(ctx, func(ctx context.Context) (geogap.ExtractedPage, error) {
		if limiter != nil {
			if err := limiter.Wait(ctx, src.URL); err != nil {
				return geogap.ExtractedPage{}, err
			}
		}

		html, err := a.Fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return geogap.ExtractedPage{}, err
		}

		sections, err := a.Extractor.Extract(html)
		if err != nil {
			return geogap.ExtractedPage{}, err
		}
		if sections == nil {
			sections = []geogap.Section{}
		}

		return geogap.ExtractedPage{PageSource: src, Sections: sections}, nil
	})
}

// reference obtains and classifies the exemplar answer, substituting the
// placeholder on any failure.
func (a *Analyzer) reference(ctx context.Context, question string) geogap.ReferenceAnswer {
	policy := CallPolicy[geogap.ReferenceAnswer]{
		Timeout:  a.generateTimeout(),
		Fallback: geogap.UnavailableReference,
	}

	return policy.Do(ctx, func(ctx context.Context) (geogap.ReferenceAnswer, error) {
		if a.Generator == nil {
			return geogap.ReferenceAnswer{}, geogap.Errorf(geogap.EUNAUTHORIZED, "generator not configured")
		}
		text, err := a.Generator.Generate(ctx, geogap.ReferencePrompt(question))
		if err != nil {
			return geogap.ReferenceAnswer{}, err
		}
		return geogap.NewReferenceAnswer(text), nil
	})
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Analyzer) fetchTimeout() time.Duration {
	if a.FetchTimeout > 0 {
		return a.FetchTimeout
	}
	return DefaultFetchTimeout
}

func (a *Analyzer) generateTimeout() time.Duration {
	if a.GenerateTimeout > 0 {
		return a.GenerateTimeout
	}
	return DefaultGenerateTimeout
}

func (a *Analyzer) concurrency() int {
	if a.Concurrency > 0 {
		return a.Concurrency
	}
	return DefaultConcurrency
}
