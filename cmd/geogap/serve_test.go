package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	main "github.com/fwojciec/geogap/cmd/geogap"
	"github.com/fwojciec/geogap/mock"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run_StopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps := &main.Dependencies{
		Ctx:      ctx,
		Stdout:   &bytes.Buffer{},
		Stderr:   &bytes.Buffer{},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Analysis: &mock.AnalysisService{},
	}

	cmd := &main.ServeCmd{Addr: "127.0.0.1:0"}

	require.NoError(t, cmd.Run(deps))
}
