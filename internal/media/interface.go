package media

import "context"

// Toolchain wraps the external media tooling used by the segmenter.
type Toolchain interface {
	// Duration returns the total playback length of an audio file in seconds.
	Duration(ctx context.Context, path string) (float64, error)
	// Clip extracts [start, start+length) seconds of audio into destPath
	// using stream copy, without re-encoding.
	Clip(ctx context.Context, srcPath, destPath string, start, length float64) error
}
