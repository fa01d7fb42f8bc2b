package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Duration probes the total length of an audio file via ffprobe.
func (t *implToolchain) Duration(ctx context.Context, path string) (float64, error) {
	// ffprobe arguments
	// -v error: suppress banner and info output
	// -show_entries format=duration: print only the container duration
	// -of default=noprint_wrappers=1:nokey=1: bare value, no section headers
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := t.executor.Execute(ctx, "ffprobe", args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}

	seconds, err := parseDuration(out)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}

	t.logger.Debug(ctx, "Probed duration of %s: %.2fs", path, seconds)
	return seconds, nil
}

func parseDuration(out string) (float64, error) {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return 0, fmt.Errorf("ffprobe returned no duration")
	}

	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", trimmed, err)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("non-positive duration %.2f", seconds)
	}

	return seconds, nil
}
