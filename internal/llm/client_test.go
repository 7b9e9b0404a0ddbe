package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return &Client{
		BaseURL:     url,
		Model:       "test-model",
		Temperature: 0.3,
		APIKey:      "test-key",
		HTTPClient:  http.DefaultClient,
	}
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "  the answer is 42  "}},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Chat(context.Background(), "be helpful", "what is 6*7?")
	require.NoError(t, err)
	assert.Equal(t, "the answer is 42", got)
}

func TestChatNoAPIKey(t *testing.T) {
	c := newTestClient("http://localhost:0")
	c.APIKey = ""

	_, err := c.Chat(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Chat(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Chat(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestChatContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(srv.URL)
	_, err := c.Chat(ctx, "s", "u")
	assert.Error(t, err)
}
