package segmenter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Segment probes the source file, plans overlapping chunks and extracts each
// one into scratchDir. The caller owns scratchDir cleanup on every exit path.
func (s *implSegmenter) Segment(ctx context.Context, filePath, scratchDir string) ([]Segment, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: stat source: %v", ErrSegmentationFailed, err)
	}

	totalDuration, err := s.toolchain.Duration(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSegmentationFailed, err)
	}

	p := s.cfg.Pipeline
	chunkDur := chunkDuration(totalDuration, info.Size(), p.SizeThresholdBytes, p.MinChunkSeconds, p.MaxChunkSeconds)
	plan := planChunks(totalDuration, chunkDur, p.OverlapSeconds)

	s.logger.Info(ctx, "Segmenting %s: %.0fs total, %d chunks of %.0fs", filePath, totalDuration, len(plan), chunkDur)

	ext := filepath.Ext(filePath)
	segments := make([]Segment, 0, len(plan))
	for _, c := range plan {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Zero-padded index keeps scratch listings in chunk order.
		destPath := filepath.Join(scratchDir, fmt.Sprintf("chunk_%04d%s", c.Index, ext))
		if err := s.toolchain.Clip(ctx, filePath, destPath, c.StartSeconds, c.LengthSeconds); err != nil {
			return nil, fmt.Errorf("%w: chunk %d: %v", ErrSegmentationFailed, c.Index, err)
		}

		segments = append(segments, Segment{
			Index:           c.Index,
			StartSeconds:    c.StartSeconds,
			DurationSeconds: c.LengthSeconds,
			Path:            destPath,
		})
	}

	return segments, nil
}
