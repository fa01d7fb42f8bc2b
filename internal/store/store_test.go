package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Episodes:  filepath.Join(dir, "episodes"),
			Summaries: filepath.Join(dir, "summaries"),
			Database:  filepath.Join(dir, "test.db"),
		},
	}

	s, err := Open(context.Background(), cfg, logger.New("error"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEpisodeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &EpisodeRecord{
		CacheKey:     "abc123",
		SourceURL:    "https://example.com/ep1.mp3",
		AudioPath:    "/data/episodes/abc123.mp3",
		SizeBytes:    2 << 20,
		DownloadedAt: time.Now().UTC().Truncate(time.Second),
	}

	if err := s.PutEpisode(ctx, rec); err != nil {
		t.Fatalf("PutEpisode() error = %v", err)
	}

	got, err := s.GetEpisode(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetEpisode() error = %v", err)
	}
	if got.SourceURL != rec.SourceURL || got.SizeBytes != rec.SizeBytes {
		t.Errorf("GetEpisode() = %+v, want %+v", got, rec)
	}
}

func TestEpisodeNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetEpisode(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEpisode() error = %v, want ErrNotFound", err)
	}
}

func TestEpisodeFirstWriterWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := &EpisodeRecord{CacheKey: "k", SourceURL: "https://a", AudioPath: "/a", DownloadedAt: time.Now()}
	second := &EpisodeRecord{CacheKey: "k", SourceURL: "https://b", AudioPath: "/b", DownloadedAt: time.Now()}

	if err := s.PutEpisode(ctx, first); err != nil {
		t.Fatal(err)
	}
	// A duplicate insert for the same key is silently ignored
	if err := s.PutEpisode(ctx, second); err != nil {
		t.Fatalf("duplicate PutEpisode() error = %v", err)
	}

	got, err := s.GetEpisode(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if got.SourceURL != "https://a" {
		t.Errorf("record mutated by second writer: %+v", got)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &SummaryRecord{
		CacheKey:         "abc123",
		TranscriptPath:   "/data/summaries/abc123_transcript.txt",
		SummaryTextPath:  "/data/summaries/abc123_summary.txt",
		SummaryAudioPath: "/data/summaries/abc123_summary.mp3",
		TranscriptWords:  5000,
		SummaryWords:     740,
		ProcessedAt:      time.Now().UTC().Truncate(time.Second),
	}

	if err := s.PutSummary(ctx, rec); err != nil {
		t.Fatalf("PutSummary() error = %v", err)
	}

	got, err := s.GetSummary(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if got.TranscriptWords != 5000 || got.SummaryWords != 740 {
		t.Errorf("GetSummary() = %+v, want %+v", got, rec)
	}
}

func TestBlobRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "downloaded.mp3")
	if err := os.WriteFile(src, []byte("episode audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	stored, err := s.SaveEpisodeAudio(ctx, "key1", src)
	if err != nil {
		t.Fatalf("SaveEpisodeAudio() error = %v", err)
	}
	if filepath.Base(stored) != "key1.mp3" {
		t.Errorf("episode audio stored as %s, want key1.mp3", filepath.Base(stored))
	}

	dest := filepath.Join(t.TempDir(), "fetched.mp3")
	if err := s.CopyEpisodeAudio(ctx, "key1", dest); err != nil {
		t.Fatalf("CopyEpisodeAudio() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "episode audio" {
		t.Errorf("fetched audio = %q", data)
	}

	if err := s.CopyEpisodeAudio(ctx, "unknown", dest); !errors.Is(err, ErrNotFound) {
		t.Errorf("CopyEpisodeAudio(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestTextArtifactNaming(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tPath, err := s.SaveTranscript(ctx, "key1", "the transcript")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(tPath) != "key1_transcript.txt" {
		t.Errorf("transcript stored as %s", filepath.Base(tPath))
	}

	sPath, err := s.SaveSummaryText(ctx, "key1", "the summary")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(sPath) != "key1_summary.txt" {
		t.Errorf("summary text stored as %s", filepath.Base(sPath))
	}

	aPath, err := s.SaveSummaryAudio(ctx, "key1", []byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(aPath) != "key1_summary.mp3" {
		t.Errorf("summary audio stored as %s", filepath.Base(aPath))
	}
}

func TestDeleteByKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "a.mp3")
	if err := os.WriteFile(src, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	audioPath, err := s.SaveEpisodeAudio(ctx, "gone", src)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PutEpisode(ctx, &EpisodeRecord{CacheKey: "gone", SourceURL: "https://x", AudioPath: audioPath, DownloadedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteByKey(ctx, "gone"); err != nil {
		t.Fatalf("DeleteByKey() error = %v", err)
	}

	if _, err := s.GetEpisode(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("episode record survived delete: %v", err)
	}
	if _, err := os.Stat(audioPath); !os.IsNotExist(err) {
		t.Errorf("episode audio blob survived delete")
	}

	// Deleting an absent key is a no-op
	if err := s.DeleteByKey(ctx, "never-existed"); err != nil {
		t.Errorf("DeleteByKey(absent) error = %v", err)
	}
}
