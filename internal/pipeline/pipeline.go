// Package pipeline runs the single pass from file path to delivered summary: resolve, extract, build the prompt, call the model, present the result.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0x0BSoD/summarize/internal/extract"
	"github.com/0x0BSoD/summarize/internal/model"
	"github.com/0x0BSoD/summarize/internal/prompt"
)

// ErrRemote marks a failure reported by (or while reaching) the model API.
var ErrRemote = errors.New("remote service error")

type Summarizer interface {
	Summarize(ctx context.Context, req model.SummaryRequest) (model.SummaryResult, error)
}

type Presenter interface {
	Present(srcPath string, res model.SummaryResult) error
}

type Pipeline struct {
	summarizer Summarizer
	presenter  Presenter
	builder    prompt.Builder
	model      string
}

func New(summarizer Summarizer, presenter Presenter, builder prompt.Builder, modelID string) *Pipeline {
	return &Pipeline{
		summarizer: summarizer,
		presenter:  presenter,
		builder:    builder,
		model:      modelID,
	}
}

// Run performs one summarization. Every failure is terminal: nothing is
// retried and no partial result is kept.
func (p *Pipeline) Run(ctx context.Context, path string, level model.DetailLevel) error {
	slog.Info("reading file", "path", path)
	src, err := extract.Resolve(path)
	if err != nil {
		return err
	}

	doc, err := extract.Extract(src)
	if err != nil {
		return err
	}
	slog.Info("extracted text", "kind", src.Kind.String(), "chars", len(doc.Text))

	req, truncated := p.builder.Build(level, doc, p.model)
	if truncated {
		slog.Warn("input truncated to fit the model input bound",
			"original_chars", len(doc.Text),
			"sent_chars", len(req.Text))
	}

	slog.Info("generating summary", "detail", string(level), "model", p.model)
	res, err := p.summarizer.Summarize(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	return p.presenter.Present(path, res)
}
