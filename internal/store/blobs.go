package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact naming: {cacheKey}.mp3 for episode audio under the episodes dir;
// {cacheKey}_transcript.txt, {cacheKey}_summary.txt and {cacheKey}_summary.mp3
// under the summaries dir.

func (s *implStore) SaveEpisodeAudio(ctx context.Context, cacheKey, srcPath string) (string, error) {
	destPath := filepath.Join(s.episodesDir, cacheKey+".mp3")
	if err := copyFile(srcPath, destPath); err != nil {
		return "", fmt.Errorf("%w: save episode audio: %v", ErrStorageFailed, err)
	}
	s.logger.Debug(ctx, "Stored episode audio: %s", destPath)
	return destPath, nil
}

func (s *implStore) CopyEpisodeAudio(ctx context.Context, cacheKey, destPath string) error {
	srcPath := filepath.Join(s.episodesDir, cacheKey+".mp3")
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: episode audio %s", ErrNotFound, cacheKey)
	}
	if err := copyFile(srcPath, destPath); err != nil {
		return fmt.Errorf("%w: fetch episode audio: %v", ErrStorageFailed, err)
	}
	return nil
}

func (s *implStore) SaveTranscript(ctx context.Context, cacheKey, text string) (string, error) {
	return s.saveText(ctx, cacheKey+"_transcript.txt", text)
}

func (s *implStore) SaveSummaryText(ctx context.Context, cacheKey, text string) (string, error) {
	return s.saveText(ctx, cacheKey+"_summary.txt", text)
}

func (s *implStore) SaveSummaryAudio(ctx context.Context, cacheKey string, audio []byte) (string, error) {
	destPath := filepath.Join(s.summariesDir, cacheKey+"_summary.mp3")
	if err := os.WriteFile(destPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("%w: save summary audio: %v", ErrStorageFailed, err)
	}
	s.logger.Debug(ctx, "Stored summary audio: %s", destPath)
	return destPath, nil
}

func (s *implStore) saveText(ctx context.Context, name, text string) (string, error) {
	destPath := filepath.Join(s.summariesDir, name)
	if err := os.WriteFile(destPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("%w: save %s: %v", ErrStorageFailed, name, err)
	}
	s.logger.Debug(ctx, "Stored text artifact: %s", destPath)
	return destPath, nil
}

func (s *implStore) removeBlobs(ctx context.Context, paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn(ctx, "Failed to remove artifact %s: %v", path, err)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
