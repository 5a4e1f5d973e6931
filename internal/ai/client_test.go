package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, 300, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []ChatCompletionChoice{{
				Message: ChatMessage{Role: "assistant", Content: "Generated answer"},
			}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", logrus.New())

	content, err := client.Complete(context.Background(), "system prompt", "user prompt", 300, 0.7)
	require.NoError(t, err)
	assert.Equal(t, "Generated answer", content)
}

func TestClient_CompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", logrus.New())

	_, err := client.Complete(context.Background(), "sys", "user", 300, 0.7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_CompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []ChatCompletionChoice{{Message: ChatMessage{Role: "assistant"}}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", logrus.New())

	_, err := client.Complete(context.Background(), "sys", "user", 300, 0.7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", logrus.New())

	_, err := client.Complete(context.Background(), "sys", "user", 300, 0.7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
