package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"podbrief/internal/cachekey"
	"podbrief/internal/store"
	"podbrief/internal/summarizer"
)

// Run drives one source identifier through the full pipeline. Stages run
// strictly in sequence; the summary and episode caches short-circuit work
// already done for the same key. Any failure emits a single error event and
// propagates to the caller.
func (p *implPipeline) Run(ctx context.Context, sourceIdentifier string, sink Sink) (*Result, error) {
	startTime := time.Now()

	key, err := cachekey.Derive(sourceIdentifier)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		return nil, p.fail(ctx, sink, "", err)
	}

	if !p.acquireKey(key) {
		return nil, p.fail(ctx, sink, key, fmt.Errorf("%w: %s", ErrRunInFlight, key))
	}
	defer p.releaseKey(key)

	if err := ctx.Err(); err != nil {
		return nil, p.fail(ctx, sink, key, err)
	}

	p.logger.Info(ctx, "Starting pipeline run for %s (key %s)", sourceIdentifier, key)

	// Summary cache: a completed run for this key answers immediately.
	if summary, err := p.store.GetSummary(ctx, key); err == nil {
		p.logger.Info(ctx, "Summary cache hit for %s", key)
		result := &Result{
			CacheKey:         key,
			SummaryAudioPath: summary.SummaryAudioPath,
			TranscriptWords:  summary.TranscriptWords,
			SummaryWords:     summary.SummaryWords,
			WasCached:        true,
			Elapsed:          time.Since(startTime),
		}
		p.emit(sink, Event{
			Stage:           StageComplete,
			Message:         "Summary already cached",
			Progress:        100,
			CacheKey:        key,
			WasCached:       true,
			TranscriptWords: summary.TranscriptWords,
			SummaryWords:    summary.SummaryWords,
			AudioPath:       summary.SummaryAudioPath,
			ElapsedSeconds:  result.Elapsed.Seconds(),
			Done:            true,
		})
		return result, nil
	} else if !isNotFound(err) {
		return nil, p.fail(ctx, sink, key, err)
	}

	runDir, err := os.MkdirTemp(p.cfg.Paths.Scratch, "run-"+uuid.NewString()[:8]+"-")
	if err != nil {
		return nil, p.fail(ctx, sink, key, fmt.Errorf("%w: create run dir: %v", store.ErrStorageFailed, err))
	}
	defer os.RemoveAll(runDir)

	audioPath, wasCached, err := p.obtainAudio(ctx, sink, key, sourceIdentifier, runDir)
	if err != nil {
		return nil, p.fail(ctx, sink, key, err)
	}

	transcript, err := p.transcribeStage(ctx, sink, key, audioPath)
	if err != nil {
		return nil, p.fail(ctx, sink, key, err)
	}

	summary, err := p.summarizeStage(ctx, sink, key, transcript)
	if err != nil {
		return nil, p.fail(ctx, sink, key, err)
	}

	summaryAudioPath, err := p.synthesizeStage(ctx, sink, key, transcript, summary)
	if err != nil {
		return nil, p.fail(ctx, sink, key, err)
	}

	elapsed := time.Since(startTime)
	p.logger.Info(ctx, "Pipeline run for %s completed in %s", key, elapsed)

	p.emit(sink, Event{
		Stage:           StageComplete,
		Message:         "Summary audio ready",
		Progress:        100,
		CacheKey:        key,
		WasCached:       wasCached,
		TranscriptWords: transcript.Words,
		SummaryWords:    summary.Words,
		SummaryText:     summary.Text,
		AudioPath:       summaryAudioPath,
		ElapsedSeconds:  elapsed.Seconds(),
		Done:            true,
	})

	return &Result{
		CacheKey:         key,
		SummaryAudioPath: summaryAudioPath,
		SummaryText:      summary.Text,
		TranscriptWords:  transcript.Words,
		SummaryWords:     summary.Words,
		WasCached:        wasCached,
		Elapsed:          elapsed,
	}, nil
}

// obtainAudio fetches the episode audio into the run directory, from the
// episode cache when possible, downloading and persisting it otherwise.
func (p *implPipeline) obtainAudio(ctx context.Context, sink Sink, key, sourceIdentifier, runDir string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	localPath := filepath.Join(runDir, "episode.mp3")

	_, err := p.store.GetEpisode(ctx, key)
	switch {
	case err == nil:
		p.emit(sink, Event{Stage: StageDownloading, Message: "Fetching cached episode audio", Progress: 10, CacheKey: key})
		if err := p.store.CopyEpisodeAudio(ctx, key, localPath); err != nil {
			return "", false, err
		}
		p.emit(sink, Event{Stage: StageDownloaded, Message: "Episode audio ready (cached)", Progress: 25, CacheKey: key, WasCached: true})
		return localPath, true, nil

	case isNotFound(err):
		if !cachekey.IsURL(sourceIdentifier) {
			return "", false, fmt.Errorf("%w: no cached episode for key %s", store.ErrNotFound, key)
		}

		p.emit(sink, Event{Stage: StageDownloading, Message: "Downloading episode audio", Progress: 10, CacheKey: key})
		size, err := p.downloader.Download(ctx, sourceIdentifier, localPath)
		if err != nil {
			return "", false, err
		}

		storedPath, err := p.store.SaveEpisodeAudio(ctx, key, localPath)
		if err != nil {
			return "", false, err
		}
		if err := p.store.PutEpisode(ctx, &store.EpisodeRecord{
			CacheKey:     key,
			SourceURL:    sourceIdentifier,
			AudioPath:    storedPath,
			SizeBytes:    size,
			DownloadedAt: time.Now().UTC(),
		}); err != nil {
			return "", false, err
		}

		p.emit(sink, Event{Stage: StageDownloaded, Message: "Episode audio downloaded", Progress: 25, CacheKey: key})
		return localPath, false, nil

	default:
		return "", false, err
	}
}

// stageArtifact carries a persisted text artifact between stages.
type stageArtifact struct {
	Text  string
	Path  string
	Words int
}

func (p *implPipeline) transcribeStage(ctx context.Context, sink Sink, key, audioPath string) (stageArtifact, error) {
	if err := ctx.Err(); err != nil {
		return stageArtifact{}, err
	}

	p.emit(sink, Event{Stage: StageTranscribing, Message: "Transcribing episode audio", Progress: 30, CacheKey: key})

	text, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return stageArtifact{}, err
	}

	// Persisted mid-run for inspection, but not a resume point: a retry after
	// a later-stage failure transcribes again.
	path, err := p.store.SaveTranscript(ctx, key, text)
	if err != nil {
		return stageArtifact{}, err
	}

	transcript := stageArtifact{Text: text, Path: path, Words: summarizer.WordCount(text)}
	p.emit(sink, Event{Stage: StageTranscribed, Message: "Transcript ready", Progress: 55, CacheKey: key, TranscriptWords: transcript.Words})
	return transcript, nil
}

func (p *implPipeline) summarizeStage(ctx context.Context, sink Sink, key string, transcript stageArtifact) (stageArtifact, error) {
	if err := ctx.Err(); err != nil {
		return stageArtifact{}, err
	}

	p.emit(sink, Event{Stage: StageSummarizing, Message: "Summarizing transcript", Progress: 60, CacheKey: key, TranscriptWords: transcript.Words})

	text, err := p.summarizer.Summarize(ctx, transcript.Text)
	if err != nil {
		return stageArtifact{}, err
	}

	path, err := p.store.SaveSummaryText(ctx, key, text)
	if err != nil {
		return stageArtifact{}, err
	}

	summary := stageArtifact{Text: text, Path: path, Words: summarizer.WordCount(text)}
	p.emit(sink, Event{
		Stage:           StageSummarized,
		Message:         "Summary text ready",
		Progress:        75,
		CacheKey:        key,
		TranscriptWords: transcript.Words,
		SummaryWords:    summary.Words,
		SummaryText:     summary.Text,
	})
	return summary, nil
}

func (p *implPipeline) synthesizeStage(ctx context.Context, sink Sink, key string, transcript, summary stageArtifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.emit(sink, Event{Stage: StageGeneratingSpeech, Message: "Generating summary audio", Progress: 80, CacheKey: key})

	audio, err := p.synthesizer.Synthesize(ctx, summary.Text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	audioPath, err := p.store.SaveSummaryAudio(ctx, key, audio)
	if err != nil {
		return "", err
	}

	if err := p.store.PutSummary(ctx, &store.SummaryRecord{
		CacheKey:         key,
		TranscriptPath:   transcript.Path,
		SummaryTextPath:  summary.Path,
		SummaryAudioPath: audioPath,
		TranscriptWords:  transcript.Words,
		SummaryWords:     summary.Words,
		ProcessedAt:      time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	return audioPath, nil
}

// fail emits the terminal error event and passes the failure through.
func (p *implPipeline) fail(ctx context.Context, sink Sink, key string, err error) error {
	p.logger.Error(ctx, "Pipeline run failed: %v", err)
	p.emit(sink, Event{
		Stage:        StageError,
		Message:      "Pipeline run failed",
		CacheKey:     key,
		Error:        true,
		ErrorMessage: err.Error(),
	})
	return err
}

func (p *implPipeline) acquireKey(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, active := p.inFlight[key]; active {
		return false
	}
	p.inFlight[key] = struct{}{}
	return true
}

func (p *implPipeline) releaseKey(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, key)
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
