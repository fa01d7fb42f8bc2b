package media

import (
	"context"
	"fmt"
	"strconv"
)

// Clip extracts a time slice of srcPath into destPath with stream copy.
func (t *implToolchain) Clip(ctx context.Context, srcPath, destPath string, start, length float64) error {
	// FFmpeg arguments for segment extraction
	// -ss before -i: fast seek to the segment start
	// -t: segment length in seconds
	// -c copy: stream copy, no re-encoding (keeps extraction fast and lossless)
	// -y: overwrite output file if exists
	args := []string{
		"-ss", formatSeconds(start),
		"-i", srcPath,
		"-t", formatSeconds(length),
		"-c", "copy",
		"-y",
		destPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return fmt.Errorf("%w: %v", ErrClipFailed, err)
	}

	t.logger.Debug(ctx, "Extracted clip %s [%.2fs +%.2fs]", destPath, start, length)
	return nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
