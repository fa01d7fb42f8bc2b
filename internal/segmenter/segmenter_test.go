package segmenter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

type stubToolchain struct {
	duration float64
	probeErr error
	clipErr  error
	clips    []string
}

func (s *stubToolchain) Duration(ctx context.Context, path string) (float64, error) {
	if s.probeErr != nil {
		return 0, s.probeErr
	}
	return s.duration, nil
}

func (s *stubToolchain) Clip(ctx context.Context, srcPath, destPath string, start, length float64) error {
	if s.clipErr != nil {
		return s.clipErr
	}
	s.clips = append(s.clips, destPath)
	return os.WriteFile(destPath, []byte("audio"), 0644)
}

func testConfig() *config.Config {
	return &config.Config{
		Pipeline: config.PipelineConfig{
			SizeThresholdBytes: 5 * 1024 * 1024,
			MaxConcurrent:      10,
			MinChunkSeconds:    60,
			MaxChunkSeconds:    600,
			OverlapSeconds:     1,
		},
	}
}

func writeSourceFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.mp3")
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSegment(t *testing.T) {
	// 10 MiB at 1000s with a 5 MiB limit: 450s chunks, 3 of them
	tc := &stubToolchain{duration: 1000}
	s := New(testConfig(), tc, logger.New("error"))

	src := writeSourceFile(t, 10<<20)
	scratch := t.TempDir()

	segments, err := s.Segment(context.Background(), src, scratch)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(segments) != 3 {
		t.Fatalf("segment count = %d, want 3", len(segments))
	}

	for i, seg := range segments {
		if seg.Index != i {
			t.Errorf("segment %d has index %d", i, seg.Index)
		}
		if filepath.Dir(seg.Path) != scratch {
			t.Errorf("segment %d written outside scratch dir: %s", i, seg.Path)
		}
		if _, err := os.Stat(seg.Path); err != nil {
			t.Errorf("segment %d file missing: %v", i, err)
		}
	}

	// Zero-padded names keep listing order equal to chunk order
	if filepath.Base(segments[0].Path) != "chunk_0000.mp3" {
		t.Errorf("segment 0 name = %s, want chunk_0000.mp3", filepath.Base(segments[0].Path))
	}
}

func TestSegmentProbeFailure(t *testing.T) {
	probeErr := errors.New("ffprobe exploded")
	tc := &stubToolchain{probeErr: probeErr}
	s := New(testConfig(), tc, logger.New("error"))

	src := writeSourceFile(t, 10<<20)

	_, err := s.Segment(context.Background(), src, t.TempDir())
	if !errors.Is(err, ErrSegmentationFailed) {
		t.Errorf("Segment() error = %v, want ErrSegmentationFailed", err)
	}
}

func TestSegmentClipFailure(t *testing.T) {
	tc := &stubToolchain{duration: 1000, clipErr: errors.New("ffmpeg exploded")}
	s := New(testConfig(), tc, logger.New("error"))

	src := writeSourceFile(t, 10<<20)

	_, err := s.Segment(context.Background(), src, t.TempDir())
	if !errors.Is(err, ErrSegmentationFailed) {
		t.Errorf("Segment() error = %v, want ErrSegmentationFailed", err)
	}
}

func TestSegmentCancelled(t *testing.T) {
	tc := &stubToolchain{duration: 1000}
	s := New(testConfig(), tc, logger.New("error"))

	src := writeSourceFile(t, 10<<20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Segment(ctx, src, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Segment() error = %v, want context.Canceled", err)
	}
}

func TestSegmentMissingSource(t *testing.T) {
	s := New(testConfig(), &stubToolchain{duration: 100}, logger.New("error"))

	_, err := s.Segment(context.Background(), "/nonexistent/episode.mp3", t.TempDir())
	if !errors.Is(err, ErrSegmentationFailed) {
		t.Errorf("Segment() error = %v, want ErrSegmentationFailed", err)
	}
}
