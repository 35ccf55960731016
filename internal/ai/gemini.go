package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// GeminiConfig carries the provider endpoint and credential. The key is
// appended to the URL, matching the Gemini generateContent convention.
type GeminiConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// GeminiClient performs single synchronous calls against the Gemini API.
// It does no retries and no payload interpretation.
type GeminiClient struct {
	url        string
	key        string
	httpClient *http.Client
}

// NewGeminiClient constructs a GeminiClient.
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("gemini api url is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		url:        cfg.APIURL,
		key:        cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// GetAnswer posts the prompt and returns the raw response body. Network
// failures, non-2xx statuses, and empty bodies surface as distinct errors.
func (c *GeminiClient) GetAnswer(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	start := time.Now()
	outcome := "error"
	defer func() {
		observeRequest(outcome, time.Since(start))
	}()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+c.key, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "status"
		return "", &StatusError{Code: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		outcome = "empty"
		return "", ErrEmptyResponse
	}

	outcome = "ok"
	return string(raw), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
