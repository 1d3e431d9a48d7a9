package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"galeria/backend/internal/service/ai"
)

func TestCompatibleProvider_Complete(t *testing.T) {
	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Reasoning map[string]any `json:"reasoning"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"m","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"óleo sobre tela"}}]}`))
	}))
	defer srv.Close()

	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "secret", BaseURL: srv.URL + "/v1/", Model: "m"})
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "system prompt", "oil on canvas")

	require.NoError(t, err)
	require.Equal(t, "óleo sobre tela", out)
	require.Equal(t, "m", got.Model)
	require.Equal(t, ai.DefaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "system", got.Messages[0].Role)
	require.Equal(t, "oil on canvas", got.Messages[1].Content)
	require.Equal(t, false, got.Reasoning["enabled"])
}

func TestRateLimiter_Wait(t *testing.T) {
	rl := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, rl.Limit())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 0; i < ai.DefaultRateLimit; i++ {
		require.NoError(t, rl.Wait(ctx))
	}

	cancelled, stop := context.WithCancel(context.Background())
	stop()
	require.Error(t, rl.Wait(cancelled))
}
