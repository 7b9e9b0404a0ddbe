// Package llm is a minimal client for the hosted chat-completions
// endpoint the tutor falls back to for open-ended questions. The endpoint
// is an opaque, fallible collaborator: solver paths never depend on it.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/san-kum/phystutor/internal/config"
)

// ErrNoAPIKey indicates the API key environment variable is unset.
var ErrNoAPIKey = errors.New("llm: api key not set")

const requestTimeout = 60 * time.Second

type Client struct {
	BaseURL     string
	Model       string
	Temperature float64
	APIKey      string
	HTTPClient  *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		APIKey:      os.Getenv(cfg.APIKeyEnv),
		HTTPClient:  &http.Client{Timeout: requestTimeout},
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a system+user prompt pair and returns the completion text.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Temperature: c.Temperature,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("llm: bad response (%d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("llm: %s (%d)", out.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("llm: empty completion")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
