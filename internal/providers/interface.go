package providers

import "context"

// Transcriber converts one audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Generator produces text from a prompt. Backs the summarizer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer renders spoken audio for a text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Set bundles the resolved capability backends handed to the pipeline.
// Resolution happens once from explicit config, never from ambient state.
type Set struct {
	Transcriber Transcriber
	Generator   Generator
	Synthesizer Synthesizer
}
