package pipeline

import (
	"context"
	"time"
)

// Result is the outcome of one successful pipeline run.
type Result struct {
	CacheKey         string
	SummaryAudioPath string
	SummaryText      string
	TranscriptWords  int
	SummaryWords     int
	WasCached        bool
	Elapsed          time.Duration
}

// Pipeline drives a source identifier through download, transcription,
// summarization and speech synthesis, short-circuiting on cached results.
type Pipeline interface {
	Run(ctx context.Context, sourceIdentifier string, sink Sink) (*Result, error)
}
