package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsBearerAndPrompts(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"ok\": true}  "}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	out, err := client.Complete(context.Background(), CompletionRequest{
		System:      "system prompt",
		User:        "user prompt",
		Model:       "fast-model",
		Temperature: 0.2,
		MaxTokens:   2000,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, out, "content should come back trimmed")
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "fast-model", gotBody["model"])

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system prompt", first["content"])
}

func TestCompleteBackendErrorKeepsStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusUnauthorized, backendErr.Status)
	assert.Contains(t, backendErr.Message, "invalid api key")
}

func TestCompleteTransportErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient("test-key", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})

	require.Error(t, err)
	var backendErr *BackendError
	assert.False(t, errors.As(err, &backendErr), "network failure is not a backend error")
}

func TestCompleteMissingKeyFailsBeforeAnyCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient("", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})

	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", System: "s", User: "u"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
