package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

type stubGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("unexpected call")
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func summarizerUnderTest(gen *stubGenerator) Summarizer {
	cfg := &config.Config{
		Pipeline: config.PipelineConfig{
			SummaryTargetWords: 750,
			SummaryMaxWords:    800,
		},
	}
	return New(cfg, gen, logger.New("error"))
}

func TestSummarizeSinglePass(t *testing.T) {
	gen := &stubGenerator{responses: []string{words(700)}}
	s := summarizerUnderTest(gen)

	got, err := s.Summarize(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if WordCount(got) != 700 {
		t.Errorf("summary word count = %d, want 700", WordCount(got))
	}
}

func TestSummarizeTwoPass(t *testing.T) {
	gen := &stubGenerator{responses: []string{words(900), words(700)}}
	s := summarizerUnderTest(gen)

	got, err := s.Summarize(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if WordCount(got) != 700 {
		t.Errorf("summary word count = %d, want 700", WordCount(got))
	}
	if !strings.Contains(gen.prompts[1], words(900)) {
		t.Error("compression pass did not receive the first summary")
	}
}

func TestSummarizeNoThirdPass(t *testing.T) {
	// The compression pass still runs long; accept it anyway.
	gen := &stubGenerator{responses: []string{words(900), words(850)}}
	s := summarizerUnderTest(gen)

	got, err := s.Summarize(context.Background(), "transcript text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want exactly 2", gen.calls)
	}
	if WordCount(got) != 850 {
		t.Errorf("summary word count = %d, want the second pass accepted as-is", WordCount(got))
	}
}

func TestSummarizeBoundary(t *testing.T) {
	// Exactly at the tolerance: no compression pass.
	gen := &stubGenerator{responses: []string{words(800)}}
	s := summarizerUnderTest(gen)

	if _, err := s.Summarize(context.Background(), "transcript"); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 at the 800-word boundary", gen.calls)
	}
}

func TestSummarizeBackendFailure(t *testing.T) {
	gen := &stubGenerator{errs: []error{errors.New("quota exhausted")}}
	s := summarizerUnderTest(gen)

	_, err := s.Summarize(context.Background(), "transcript")
	if !errors.Is(err, ErrSummarizationFailed) {
		t.Errorf("Summarize() error = %v, want ErrSummarizationFailed", err)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"simple", "hello world", 2},
		{"mixed whitespace", "a\tb\nc  d", 4},
		{"leading and trailing", "  one two  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
