package segmenter

import "context"

// Segment is one time-bounded slice of a source audio file. Index defines
// reassembly order for the transcripts.
type Segment struct {
	Index           int
	StartSeconds    float64
	DurationSeconds float64
	Path            string
}

// Segmenter splits an oversized audio file into overlapping chunks that fit
// the transcription backend's per-call size limit.
type Segmenter interface {
	Segment(ctx context.Context, filePath, scratchDir string) ([]Segment, error)
}
