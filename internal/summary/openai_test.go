package summary_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/summarize/internal/model"
	"github.com/0x0BSoD/summarize/internal/summary"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestOpenAISummarize(t *testing.T) {
	var got chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "cmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "A fox jumps over a dog."}, "finish_reason": "stop"}
			]
		}`)
	}))
	defer srv.Close()

	s := summary.NewOpenAISummarizer(srv.URL+"/v1", "test-key", time.Minute)

	req := model.SummaryRequest{
		Instruction: "You are a professional summarizer.",
		Text:        "The quick brown fox jumps over the lazy dog.",
		Model:       "gpt-4o-mini",
	}
	res, err := s.Summarize(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "A fox jumps over a dog.", res.Text)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, req.Instruction, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, req.Text)
}

func TestOpenAISummarizeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error": {"message": "Rate limit reached for gpt-4o-mini", "type": "rate_limit_error"}}`)
	}))
	defer srv.Close()

	s := summary.NewOpenAISummarizer(srv.URL+"/v1", "test-key", time.Minute)

	_, err := s.Summarize(context.Background(), model.SummaryRequest{
		Instruction: "inst",
		Text:        "text",
		Model:       "gpt-4o-mini",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached for gpt-4o-mini")
}

func TestOpenAISummarizeEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "cmpl-2", "object": "chat.completion", "choices": []}`)
	}))
	defer srv.Close()

	s := summary.NewOpenAISummarizer(srv.URL+"/v1", "test-key", time.Minute)

	_, err := s.Summarize(context.Background(), model.SummaryRequest{Model: "gpt-4o-mini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
