package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/geogap"
	"github.com/fwojciec/geogap/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer returns a server speaking the chat completions API that
// answers every request with content.
func completionServer(t *testing.T, content string, requests chan<- map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if requests != nil {
			requests <- body
		}

		choices := []map[string]any{}
		if content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "llama-3.3-70b-versatile",
			"choices": choices,
		})
	}))
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns completion text", func(t *testing.T) {
		t.Parallel()

		requests := make(chan map[string]any, 1)
		srv := completionServer(t, "  GEO is generative engine optimization.  ", requests)
		defer srv.Close()

		gen := openai.NewGenerator("test-key", openai.WithBaseURL(srv.URL))

		text, err := gen.Generate(context.Background(), "Explain GEO")

		require.NoError(t, err)
		assert.Equal(t, "GEO is generative engine optimization.", text)

		body := <-requests
		assert.Equal(t, openai.DefaultModel, body["model"])
		assert.EqualValues(t, 1024, body["max_tokens"])
		assert.InDelta(t, 0.7, body["temperature"], 0.001)
		messages := body["messages"].([]any)
		require.Len(t, messages, 1)
		assert.Equal(t, "user", messages[0].(map[string]any)["role"])
		assert.Equal(t, "Explain GEO", messages[0].(map[string]any)["content"])
	})

	t.Run("empty choices yield no-response text", func(t *testing.T) {
		t.Parallel()

		srv := completionServer(t, "", nil)
		defer srv.Close()

		gen := openai.NewGenerator("test-key", openai.WithBaseURL(srv.URL))

		text, err := gen.Generate(context.Background(), "Explain GEO")

		require.NoError(t, err)
		assert.Equal(t, geogap.NoResponseText, text)
	})

	t.Run("propagates API errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		gen := openai.NewGenerator("bad-key", openai.WithBaseURL(srv.URL))

		_, err := gen.Generate(context.Background(), "Explain GEO")

		require.Error(t, err)
	})

	t.Run("missing key reports unauthorized", func(t *testing.T) {
		t.Parallel()

		gen := openai.NewGenerator("")

		_, err := gen.Generate(context.Background(), "Explain GEO")

		require.Error(t, err)
		assert.Equal(t, geogap.EUNAUTHORIZED, geogap.ErrorCode(err))
	})

	t.Run("empty prompt is invalid", func(t *testing.T) {
		t.Parallel()

		gen := openai.NewGenerator("test-key")

		_, err := gen.Generate(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, geogap.EINVALID, geogap.ErrorCode(err))
	})
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	req := openai.BuildRequest("custom-model", "prompt text")

	assert.Equal(t, "custom-model", req.Model)
	assert.Equal(t, 1024, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 0.001)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "prompt text", req.Messages[0].Content)
}
