package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"podbrief/internal/store"
	"podbrief/internal/watcher"
)

func newWatchCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Ingest audio files dropped into the input folder",
		Long:  "Monitors the configured input directory; each new audio file is registered as a cached episode and run through transcription, summarization and speech synthesis.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, *configFlag)
			if err != nil {
				return err
			}
			defer a.close()

			unlock, err := acquireInstanceLock(a.cfg.Paths.Database, "watch")
			if err != nil {
				return err
			}
			defer unlock()

			w, err := watcher.New(a.cfg.Paths.Input, a.ingestLocalFile, a.logger, a.cfg.Pipeline.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			a.logger.Info(ctx, "Monitoring drop folder: %s", a.cfg.Paths.Input)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

// ingestLocalFile registers a dropped audio file as a pre-downloaded episode
// and runs the rest of the pipeline against it. The file's base name (without
// extension) becomes the cache key.
func (a *app) ingestLocalFile(ctx context.Context, filePath string) error {
	base := filepath.Base(filePath)
	key := strings.TrimSuffix(base, filepath.Ext(base))

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("stat dropped file: %w", err)
	}

	storedPath, err := a.store.SaveEpisodeAudio(ctx, key, filePath)
	if err != nil {
		return err
	}
	if err := a.store.PutEpisode(ctx, &store.EpisodeRecord{
		CacheKey:     key,
		SourceURL:    "file://" + filePath,
		AudioPath:    storedPath,
		SizeBytes:    info.Size(),
		DownloadedAt: time.Now().UTC(),
	}); err != nil {
		return err
	}

	// Consumed: the episode cache now owns the audio
	if err := os.Remove(filePath); err != nil {
		a.logger.Warn(ctx, "Failed to remove ingested file %s: %v", filePath, err)
	}

	result, err := a.pipeline.Run(ctx, key, nil)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "Ingested %s -> %s (%d transcript words, %d summary words)",
		base, result.SummaryAudioPath, result.TranscriptWords, result.SummaryWords)
	return nil
}
