package segmenter

import (
	"podbrief/internal/config"
	"podbrief/internal/logger"
	"podbrief/internal/media"
)

type implSegmenter struct {
	cfg       *config.Config
	toolchain media.Toolchain
	logger    logger.Logger
}

// New creates a new Segmenter instance
func New(cfg *config.Config, tc media.Toolchain, log logger.Logger) Segmenter {
	return &implSegmenter{
		cfg:       cfg,
		toolchain: tc,
		logger:    log,
	}
}
