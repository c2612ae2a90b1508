package summary

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/0x0BSoD/summarize/internal/model"
)

type OpenAISummarizer struct {
	client  *openai.Client
	timeout time.Duration
}

// NewOpenAISummarizer creates a summarizer backed by any OpenAI-compatible API.
// Set baseURL to a non-empty string to point at a local server (LM Studio,
// llama.cpp, Ollama's /v1 endpoint, etc.); leave empty for api.openai.com.
func NewOpenAISummarizer(baseURL, apiKey string, timeout time.Duration) *OpenAISummarizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAISummarizer{
		client:  openai.NewClientWithConfig(cfg),
		timeout: timeout,
	}
}

// Summarize performs a single chat-completion call. There is no retry: the
// first failure is surfaced with the service's own error text intact.
func (o *OpenAISummarizer) Summarize(ctx context.Context, req model.SummaryRequest) (model.SummaryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: summaryTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.Instruction},
			{Role: openai.ChatMessageRoleUser, Content: userPreamble + req.Text},
		},
	})
	if err != nil {
		return model.SummaryResult{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return model.SummaryResult{}, fmt.Errorf("empty response from model %q", req.Model)
	}

	return model.SummaryResult{Text: resp.Choices[0].Message.Content}, nil
}
