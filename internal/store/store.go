package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *implStore) GetEpisode(ctx context.Context, cacheKey string) (*EpisodeRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT cache_key, source_url, audio_path, size_bytes, downloaded_at
		 FROM episodes WHERE cache_key = ?`, cacheKey)

	var rec EpisodeRecord
	err := row.Scan(&rec.CacheKey, &rec.SourceURL, &rec.AudioPath, &rec.SizeBytes, &rec.DownloadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: episode %s", ErrNotFound, cacheKey)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get episode: %v", ErrStorageFailed, err)
	}

	return &rec, nil
}

func (s *implStore) PutEpisode(ctx context.Context, rec *EpisodeRecord) error {
	// First writer wins; a concurrent duplicate insert is not an error.
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO episodes (cache_key, source_url, audio_path, size_bytes, downloaded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.CacheKey, rec.SourceURL, rec.AudioPath, rec.SizeBytes, rec.DownloadedAt)
	if err != nil {
		return fmt.Errorf("%w: put episode: %v", ErrStorageFailed, err)
	}
	return nil
}

func (s *implStore) GetSummary(ctx context.Context, cacheKey string) (*SummaryRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT cache_key, transcript_path, summary_text_path, summary_audio_path,
		        transcript_words, summary_words, processed_at
		 FROM summaries WHERE cache_key = ?`, cacheKey)

	var rec SummaryRecord
	err := row.Scan(&rec.CacheKey, &rec.TranscriptPath, &rec.SummaryTextPath,
		&rec.SummaryAudioPath, &rec.TranscriptWords, &rec.SummaryWords, &rec.ProcessedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: summary %s", ErrNotFound, cacheKey)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get summary: %v", ErrStorageFailed, err)
	}

	return &rec, nil
}

func (s *implStore) PutSummary(ctx context.Context, rec *SummaryRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO summaries (cache_key, transcript_path, summary_text_path,
		        summary_audio_path, transcript_words, summary_words, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.CacheKey, rec.TranscriptPath, rec.SummaryTextPath, rec.SummaryAudioPath,
		rec.TranscriptWords, rec.SummaryWords, rec.ProcessedAt)
	if err != nil {
		return fmt.Errorf("%w: put summary: %v", ErrStorageFailed, err)
	}
	return nil
}

func (s *implStore) ListEpisodes(ctx context.Context) ([]EpisodeRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cache_key, source_url, audio_path, size_bytes, downloaded_at
		 FROM episodes ORDER BY downloaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list episodes: %v", ErrStorageFailed, err)
	}
	defer rows.Close()

	var records []EpisodeRecord
	for rows.Next() {
		var rec EpisodeRecord
		if err := rows.Scan(&rec.CacheKey, &rec.SourceURL, &rec.AudioPath, &rec.SizeBytes, &rec.DownloadedAt); err != nil {
			return nil, fmt.Errorf("%w: scan episode: %v", ErrStorageFailed, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list episodes: %v", ErrStorageFailed, err)
	}

	return records, nil
}

func (s *implStore) ListSummaries(ctx context.Context) ([]SummaryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cache_key, transcript_path, summary_text_path, summary_audio_path,
		        transcript_words, summary_words, processed_at
		 FROM summaries ORDER BY processed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list summaries: %v", ErrStorageFailed, err)
	}
	defer rows.Close()

	var records []SummaryRecord
	for rows.Next() {
		var rec SummaryRecord
		if err := rows.Scan(&rec.CacheKey, &rec.TranscriptPath, &rec.SummaryTextPath,
			&rec.SummaryAudioPath, &rec.TranscriptWords, &rec.SummaryWords, &rec.ProcessedAt); err != nil {
			return nil, fmt.Errorf("%w: scan summary: %v", ErrStorageFailed, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list summaries: %v", ErrStorageFailed, err)
	}

	return records, nil
}

// DeleteByKey removes the records and blob artifacts for one cache key.
func (s *implStore) DeleteByKey(ctx context.Context, cacheKey string) error {
	summary, err := s.GetSummary(ctx, cacheKey)
	if err == nil {
		s.removeBlobs(ctx, summary.TranscriptPath, summary.SummaryTextPath, summary.SummaryAudioPath)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	episode, err := s.GetEpisode(ctx, cacheKey)
	if err == nil {
		s.removeBlobs(ctx, episode.AudioPath)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM summaries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("%w: delete summary: %v", ErrStorageFailed, err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM episodes WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("%w: delete episode: %v", ErrStorageFailed, err)
	}

	return nil
}
