package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrSummarizationFailed = errors.New("summarization failed")

const summaryPrompt = `You are summarizing a podcast episode for spoken narration. Write a summary of roughly %d words (about 5 minutes read aloud at a natural pace).

Requirements:
- Preserve ALL salient points, arguments and conclusions from the transcript
- Use natural spoken transitions between topics, as a narrator would
- No headings, bullet points or markdown: plain flowing prose only
- Do not mention that this is a summary or refer to "the transcript"

Transcript:
---
%s
---`

const compressPrompt = `The following summary is too long. Compress it to at most %d words while preserving every key point. Keep the natural spoken style. Return only the compressed summary.

Summary:
---
%s
---`

// Summarize asks the generation backend for a target-length summary and
// issues at most one compression pass when the first result runs long.
// Whatever the second pass returns is accepted as-is.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	summary, err := s.generator.Generate(ctx, fmt.Sprintf(summaryPrompt, s.targetWords, transcript))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	words := WordCount(summary)
	if words <= s.maxWords {
		s.logger.Info(ctx, "Summary within tolerance: %d words", words)
		return summary, nil
	}

	s.logger.Info(ctx, "Summary ran long (%d words), compressing to %d", words, s.targetWords)
	compressed, err := s.generator.Generate(ctx, fmt.Sprintf(compressPrompt, s.targetWords, summary))
	if err != nil {
		return "", fmt.Errorf("%w: compression pass: %v", ErrSummarizationFailed, err)
	}

	return compressed, nil
}

// WordCount counts whitespace-separated tokens, ignoring empty ones.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
