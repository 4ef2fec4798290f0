package mock

import (
	"context"

	"github.com/fwojciec/geogap"
)

var _ geogap.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of geogap.AnalysisService.
type AnalysisService struct {
	AnalyzeFn func(ctx context.Context, req geogap.AnalysisRequest) (*geogap.AnalysisResult, error)
}

func (s *AnalysisService) Analyze(ctx context.Context, req geogap.AnalysisRequest) (*geogap.AnalysisResult, error) {
	return s.AnalyzeFn(ctx, req)
}
