package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"podbrief/internal/segmenter"
)

// Transcribe converts one audio file into text. Files at or below the size
// threshold go to the backend in a single call; larger files are segmented
// into a per-run scratch directory, transcribed under bounded concurrency and
// reassembled in segment order. The scratch directory is removed on every
// exit path.
func (t *implTranscriber) Transcribe(ctx context.Context, filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: stat source: %v", ErrTranscriptionFailed, err)
	}

	if info.Size() <= t.cfg.Pipeline.SizeThresholdBytes {
		t.logger.Info(ctx, "Transcribing %s in one call (%d bytes)", filePath, info.Size())
		text, err := t.backend.Transcribe(ctx, filePath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
		}
		return text, nil
	}

	scratchDir, err := os.MkdirTemp(t.cfg.Paths.Scratch, "segments-"+uuid.NewString()[:8]+"-")
	if err != nil {
		return "", fmt.Errorf("%w: create scratch dir: %v", ErrTranscriptionFailed, err)
	}
	defer os.RemoveAll(scratchDir)

	segments, err := t.segmenter.Segment(ctx, filePath, scratchDir)
	if err != nil {
		return "", err
	}

	texts, err := t.transcribeSegments(ctx, segments)
	if err != nil {
		return "", err
	}

	return strings.Join(texts, " "), nil
}

// transcribeSegments fans out one backend call per segment, capped by the
// counting semaphore. Results land in a pre-sized slice indexed by segment
// number so concatenation order never depends on completion order.
func (t *implTranscriber) transcribeSegments(ctx context.Context, segments []segmenter.Segment) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]string, len(segments))
	errs := make([]error, len(segments))

	var wg sync.WaitGroup
	for _, seg := range segments {
		// Observe cancellation before starting each unstarted segment
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		go func(seg segmenter.Segment) {
			defer wg.Done()

			if err := t.sem.acquire(ctx); err != nil {
				errs[seg.Index] = err
				return
			}
			defer t.sem.release()

			if err := ctx.Err(); err != nil {
				errs[seg.Index] = err
				return
			}

			t.logger.Debug(ctx, "Transcribing segment %d: %s", seg.Index, seg.Path)
			text, err := t.backend.Transcribe(ctx, seg.Path)
			if err != nil {
				errs[seg.Index] = err
				// A single failed segment fails the whole run
				cancel()
				return
			}
			results[seg.Index] = text
		}(seg)
	}
	wg.Wait()

	// Report the original backend failure, not the cancellations it fanned
	// out to the other segments.
	var firstCancel error
	for _, seg := range segments {
		err := errs[seg.Index]
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if firstCancel == nil {
				firstCancel = err
			}
			continue
		}
		return nil, fmt.Errorf("%w: segment %d: %v", ErrTranscriptionFailed, seg.Index, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstCancel != nil {
		return nil, firstCancel
	}

	return results, nil
}
