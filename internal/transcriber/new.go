package transcriber

import (
	"podbrief/internal/config"
	"podbrief/internal/logger"
	"podbrief/internal/providers"
	"podbrief/internal/segmenter"
)

type implTranscriber struct {
	cfg       *config.Config
	segmenter segmenter.Segmenter
	backend   providers.Transcriber
	logger    logger.Logger
	sem       *semaphore
}

// New creates a new Transcriber instance
func New(cfg *config.Config, seg segmenter.Segmenter, backend providers.Transcriber, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:       cfg,
		segmenter: seg,
		backend:   backend,
		logger:    log,
		sem:       newSemaphore(cfg.Pipeline.MaxConcurrent),
	}
}
