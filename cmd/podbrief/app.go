package main

import (
	"context"
	"fmt"
	"os"

	"podbrief/internal/config"
	"podbrief/internal/downloader"
	"podbrief/internal/logger"
	"podbrief/internal/media"
	"podbrief/internal/pipeline"
	"podbrief/internal/providers"
	"podbrief/internal/segmenter"
	"podbrief/internal/store"
	"podbrief/internal/summarizer"
	"podbrief/internal/transcriber"
	"podbrief/pkg/executor"
)

// app bundles the wired pipeline and its collaborators for one command run.
type app struct {
	cfg      *config.Config
	logger   logger.Logger
	store    store.Store
	pipeline pipeline.Pipeline
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	st, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provs, err := providers.Resolve(cfg, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("resolve providers: %w", err)
	}

	exec := executor.New()
	toolchain := media.New(exec, log)
	seg := segmenter.New(cfg, toolchain, log)
	tr := transcriber.New(cfg, seg, provs.Transcriber, log)
	sm := summarizer.New(cfg, provs.Generator, log)
	dl := downloader.New(log)

	return &app{
		cfg:      cfg,
		logger:   log,
		store:    st,
		pipeline: pipeline.New(cfg, st, dl, tr, sm, provs.Synthesizer, log),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn(context.Background(), "Failed to close store: %v", err)
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Episodes,
		cfg.Paths.Summaries,
		cfg.Paths.Scratch,
		cfg.Paths.Input,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
