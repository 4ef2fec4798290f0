package analyze_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/geogap/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://example.com/a")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits pages on the same host", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/a"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://example.com/b")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "https://a.example/page"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://b.example/page")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different host should not wait")
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(0.1) // 10s between requests

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "https://example.com/")
		require.Error(t, err)
	})
}
