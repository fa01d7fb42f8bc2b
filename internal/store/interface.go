package store

import (
	"context"
	"time"
)

// EpisodeRecord describes one downloaded source, created once per cache key
// and never mutated.
type EpisodeRecord struct {
	CacheKey     string
	SourceURL    string
	AudioPath    string
	SizeBytes    int64
	DownloadedAt time.Time
}

// SummaryRecord links the artifacts of one completed pipeline run, created
// once per cache key and never mutated.
type SummaryRecord struct {
	CacheKey         string
	TranscriptPath   string
	SummaryTextPath  string
	SummaryAudioPath string
	TranscriptWords  int
	SummaryWords     int
	ProcessedAt      time.Time
}

// Store persists episode and summary records plus their blob artifacts.
type Store interface {
	GetEpisode(ctx context.Context, cacheKey string) (*EpisodeRecord, error)
	PutEpisode(ctx context.Context, rec *EpisodeRecord) error
	GetSummary(ctx context.Context, cacheKey string) (*SummaryRecord, error)
	PutSummary(ctx context.Context, rec *SummaryRecord) error
	ListEpisodes(ctx context.Context) ([]EpisodeRecord, error)
	ListSummaries(ctx context.Context) ([]SummaryRecord, error)
	DeleteByKey(ctx context.Context, cacheKey string) error

	SaveEpisodeAudio(ctx context.Context, cacheKey, srcPath string) (string, error)
	CopyEpisodeAudio(ctx context.Context, cacheKey, destPath string) error
	SaveTranscript(ctx context.Context, cacheKey, text string) (string, error)
	SaveSummaryText(ctx context.Context, cacheKey, text string) (string, error)
	SaveSummaryAudio(ctx context.Context, cacheKey string, audio []byte) (string, error)

	Close() error
}
