package summarizer

import "context"

// Summarizer compresses a transcript into a fixed-length spoken summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
