// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/0x0BSoD/summarize/internal/config"
	"github.com/0x0BSoD/summarize/internal/extract"
	"github.com/0x0BSoD/summarize/internal/model"
	"github.com/0x0BSoD/summarize/internal/output"
	"github.com/0x0BSoD/summarize/internal/pipeline"
	"github.com/0x0BSoD/summarize/internal/prompt"
	"github.com/0x0BSoD/summarize/internal/summary"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, rest, err := config.Load(args)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		return 2
	}

	if cfg.CheckConfig {
		return checkConfig(cfg)
	}

	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: summarize [flags] <file_path>")
		return 2
	}
	path := rest[0]

	level, err := model.ParseDetailLevel(cfg.Detail)
	if err != nil {
		slog.Error("invalid detail level", "err", err)
		return 2
	}

	if err := cfg.ValidateBackend(); err != nil {
		slog.Error("backend is not configured", "err", err)
		return exitCode(err)
	}

	var summarizer pipeline.Summarizer
	switch cfg.AIType {
	case "ollama":
		summarizer = summary.NewOllamaSummarizer(cfg.AIBaseURL, cfg.AITimeout)
		slog.Info("using Ollama summarizer", "model", cfg.Model)
	default:
		summarizer = summary.NewOpenAISummarizer(cfg.AIBaseURL, cfg.AIKey, cfg.AITimeout)
		slog.Info("using OpenAI-compatible summarizer", "model", cfg.Model)
	}

	p := pipeline.New(
		summarizer,
		output.Presenter{
			Out:           os.Stdout,
			FileThreshold: cfg.OutputFileThreshold,
			Dir:           cfg.OutputDir,
		},
		prompt.Builder{MaxChars: cfg.MaxInputChars},
		cfg.Model,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := p.Run(ctx, path, level); err != nil {
		slog.Error("summarization failed", "err", err)
		return exitCode(err)
	}

	return 0
}

// checkConfig reports whether the selected backend is ready to be called,
// without touching any input file.
func checkConfig(cfg config.Config) int {
	switch cfg.AIType {
	case "ollama":
		if cfg.AIBaseURL != "" {
			fmt.Printf("ollama endpoint is configured: %s\n", cfg.AIBaseURL)
			return 0
		}
		fmt.Println("ai-base-url is not set")
		return 1
	default:
		if cfg.AIKey != "" {
			fmt.Println("OPENAI_API_KEY is set")
			return 0
		}
		fmt.Println("OPENAI_API_KEY is not set")
		fmt.Println("set it with: export OPENAI_API_KEY='sk-...'")
		return 1
	}
}

// exitCode maps the error taxonomy to distinct non-zero exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, config.ErrMissingCredential):
		return 3
	case errors.Is(err, fs.ErrNotExist):
		return 4
	case errors.Is(err, fs.ErrPermission):
		return 5
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return 6
	case errors.Is(err, extract.ErrExtractionFailed):
		return 7
	case errors.Is(err, pipeline.ErrRemote):
		return 8
	case errors.Is(err, output.ErrWrite):
		return 9
	}
	return 1
}
