package transcriber

import "context"

// Transcriber turns an audio file into text, segmenting oversized files and
// bounding concurrent backend calls.
type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}
