package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/geogap"
	main "github.com/fwojciec/geogap/cmd/geogap"
	"github.com/fwojciec/geogap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(req geogap.AnalysisRequest) *geogap.AnalysisResult {
	target := geogap.PageSource{URL: req.TargetURL, Role: geogap.RoleTarget}
	return &geogap.AnalysisResult{
		Question:       req.Question,
		TargetURL:      req.TargetURL,
		ReferenceURLs:  req.ReferenceURLs,
		DetectedFormat: geogap.FormatStepList,
		AIAnswer:       "1. First\n2. Second",
		ExtractedData: []geogap.ExtractedPage{
			{PageSource: target, Sections: []geogap.Section{}},
		},
		Analysis: []geogap.PageAnalysis{
			{PageSource: target, MissingSections: []string{geogap.MissingSteps}},
		},
		Recommendations:  []geogap.Recommendation{geogap.RecommendSteps},
		ProcessingTimeMs: 42,
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints report", func(t *testing.T) {
		t.Parallel()

		var got geogap.AnalysisRequest
		svc := &mock.AnalysisService{
			AnalyzeFn: func(_ context.Context, req geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
				got = req
				return sampleResult(req), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analysis: svc,
		}

		cmd := &main.AnalyzeCmd{
			Question:   "how to bake bread",
			Target:     "https://mine.test",
			References: []string{"https://a.test", "https://b.test"},
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "how to bake bread", got.Question)
		assert.Equal(t, "https://mine.test", got.TargetURL)
		assert.Equal(t, []string{"https://a.test", "https://b.test"}, got.ReferenceURLs)
		assert.Equal(t, geogap.FormatReport(sampleResult(got)), stdout.String())
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		svc := &mock.AnalysisService{
			AnalyzeFn: func(_ context.Context, req geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
				return sampleResult(req), nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Analysis: svc,
		}

		cmd := &main.AnalyzeCmd{
			Question:   "how to bake bread",
			Target:     "https://mine.test",
			References: []string{"https://a.test"},
			JSON:       true,
		}
		require.NoError(t, cmd.Run(deps))

		var payload map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
		assert.Equal(t, "steps", payload["detectedFormat"])
		assert.Equal(t, "https://mine.test", payload["targetUrl"])
		assert.Equal(t, float64(42), payload["processingTimeMs"])
	})

	t.Run("reports error message", func(t *testing.T) {
		t.Parallel()

		svc := &mock.AnalysisService{
			AnalyzeFn: func(context.Context, geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
				return nil, geogap.Errorf(geogap.EINVALID, geogap.InvalidRequestMessage)
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Analysis: svc,
		}

		cmd := &main.AnalyzeCmd{Question: "q", Target: "https://mine.test", References: []string{"https://a.test"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, geogap.EINVALID, geogap.ErrorCode(err))
		assert.Equal(t, "error: Invalid request payload\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("hides internal error details", func(t *testing.T) {
		t.Parallel()

		svc := &mock.AnalysisService{
			AnalyzeFn: func(context.Context, geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
				return nil, errors.New("boom")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Analysis: svc,
		}

		cmd := &main.AnalyzeCmd{Question: "q", Target: "https://mine.test", References: []string{"https://a.test"}}

		require.Error(t, cmd.Run(deps))
		assert.Equal(t, "error: Internal error\n", stderr.String())
	})
}
