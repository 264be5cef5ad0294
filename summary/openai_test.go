package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAISummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Equal(t, 150, req.MaxTokens)
		assert.InDelta(t, 0.7, req.Temperature, 1e-9)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "newspaper editor")
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "Une longue dépêche.")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  Un résumé vif.  "}}]}`))
	}))
	t.Cleanup(server.Close)

	o := NewOpenAI("test-key")
	o.BaseURL = server.URL
	o.Client = server.Client()

	got, err := o.Summarize(context.Background(), "Une longue dépêche.")
	require.NoError(t, err)
	assert.Equal(t, "Un résumé vif.", got)
}

func TestOpenAIPassThroughWithoutKey(t *testing.T) {
	o := &OpenAI{}

	got, err := o.Summarize(context.Background(), "Texte original.")
	require.NoError(t, err)
	assert.Equal(t, "Texte original.", got)
}

func TestOpenAIPassThroughEmptyText(t *testing.T) {
	o := NewOpenAI("test-key")
	o.BaseURL = "http://127.0.0.1:0"

	got, err := o.Summarize(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "   ", got)
}

func TestOpenAIStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	t.Cleanup(server.Close)

	o := NewOpenAI("test-key")
	o.BaseURL = server.URL
	o.Client = server.Client()

	_, err := o.Summarize(context.Background(), "Une dépêche.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenAIEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(server.Close)

	o := NewOpenAI("test-key")
	o.BaseURL = server.URL
	o.Client = server.Client()

	_, err := o.Summarize(context.Background(), "Une dépêche.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestNoopSummarize(t *testing.T) {
	got, err := Noop{}.Summarize(context.Background(), "Tel quel.")
	require.NoError(t, err)
	assert.Equal(t, "Tel quel.", got)
}
