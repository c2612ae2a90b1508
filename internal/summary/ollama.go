package summary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/0x0BSoD/summarize/internal/model"
)

type OllamaSummarizer struct {
	client  *api.Client
	timeout time.Duration
}

// NewOllamaSummarizer creates a summarizer backed by a remote Ollama server.
// host is the server address without scheme, e.g. "ollama.internal:11434".
func NewOllamaSummarizer(host string, timeout time.Duration) *OllamaSummarizer {
	c := api.NewClient(&url.URL{
		Scheme: "http",
		Host:   host,
		Path:   "/",
	}, &http.Client{})

	return &OllamaSummarizer{
		client:  c,
		timeout: timeout,
	}
}

func (o *OllamaSummarizer) Summarize(ctx context.Context, req model.SummaryRequest) (model.SummaryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	genReq := &api.GenerateRequest{
		Model:   req.Model,
		System:  req.Instruction,
		Prompt:  userPreamble + req.Text,
		Options: map[string]any{"temperature": summaryTemperature},
	}

	var responseFlow []string
	err := o.client.Generate(ctx, genReq, func(resp api.GenerateResponse) error {
		responseFlow = append(responseFlow, resp.Response)
		return nil
	})
	if err != nil {
		return model.SummaryResult{}, fmt.Errorf("generate: %w", err)
	}

	text := strings.Join(responseFlow, "")
	if strings.TrimSpace(text) == "" {
		return model.SummaryResult{}, fmt.Errorf("empty response from model %q", req.Model)
	}

	return model.SummaryResult{Text: text}, nil
}
