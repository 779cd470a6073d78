// Package llm wraps the inference backend behind a single Complete call.
// The backend speaks the OpenAI chat-completions protocol; by default the
// client points at the hosted NVIDIA NIM endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const completionTimeout = 30 * time.Second

// ErrMissingAPIKey is returned on the first inference attempt without a
// configured credential. Startup does not check for it.
var ErrMissingAPIKey = errors.New("NVIDIA_API_KEY not configured, please set the environment variable")

// BackendError carries a non-2xx answer from the inference backend. Its
// status and message are surfaced to the caller unchanged.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("inference backend error (status %d): %s", e.Status, e.Message)
}

// CompletionRequest is one text-completion invocation.
type CompletionRequest struct {
	System      string
	User        string
	Model       string
	Temperature float32
	MaxTokens   int
}

// Client invokes the inference backend with bearer-token auth and a fixed
// per-call timeout. It never retries; a failure is fatal for the request.
type Client struct {
	apiKey string
	api    *openai.Client
}

func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: completionTimeout}
	return &Client{apiKey: apiKey, api: openai.NewClientWithConfig(cfg)}
}

// Complete sends the system/user prompt pair and returns the model's text.
// Backend rejections come back as *BackendError; network failures and
// timeouts as plain errors.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &BackendError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return "", &BackendError{Status: reqErr.HTTPStatusCode, Message: reqErr.Error()}
		}
		return "", fmt.Errorf("inference call failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("inference backend returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
