package summarizer

import (
	"podbrief/internal/config"
	"podbrief/internal/logger"
	"podbrief/internal/providers"
)

type implSummarizer struct {
	targetWords int
	maxWords    int
	generator   providers.Generator
	logger      logger.Logger
}

// New creates a new Summarizer instance
func New(cfg *config.Config, gen providers.Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		targetWords: cfg.Pipeline.SummaryTargetWords,
		maxWords:    cfg.Pipeline.SummaryMaxWords,
		generator:   gen,
		logger:      log,
	}
}
