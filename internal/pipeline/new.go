package pipeline

import (
	"sync"

	"podbrief/internal/config"
	"podbrief/internal/downloader"
	"podbrief/internal/logger"
	"podbrief/internal/providers"
	"podbrief/internal/store"
	"podbrief/internal/summarizer"
	"podbrief/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	store       store.Store
	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	synthesizer providers.Synthesizer
	logger      logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	st store.Store,
	dl downloader.Downloader,
	tr transcriber.Transcriber,
	sm summarizer.Summarizer,
	sy providers.Synthesizer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		store:       st,
		downloader:  dl,
		transcriber: tr,
		summarizer:  sm,
		synthesizer: sy,
		logger:      log,
		inFlight:    make(map[string]struct{}),
	}
}
