package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"podbrief/internal/config"
	"podbrief/internal/logger"
)

type implStore struct {
	db           *sql.DB
	episodesDir  string
	summariesDir string
	logger       logger.Logger
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS episodes (
    cache_key TEXT PRIMARY KEY,
    source_url TEXT NOT NULL,
    audio_path TEXT NOT NULL,
    size_bytes INTEGER NOT NULL,
    downloaded_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS summaries (
    cache_key TEXT PRIMARY KEY,
    transcript_path TEXT NOT NULL,
    summary_text_path TEXT NOT NULL,
    summary_audio_path TEXT NOT NULL,
    transcript_words INTEGER NOT NULL,
    summary_words INTEGER NOT NULL,
    processed_at TIMESTAMP NOT NULL
);
`

// Open connects to the metadata database, running migrations and creating
// the artifact directories as needed.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	for _, dir := range []string{filepath.Dir(cfg.Paths.Database), cfg.Paths.Episodes, cfg.Paths.Summaries} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Paths.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &implStore{
		db:           db,
		episodesDir:  cfg.Paths.Episodes,
		summariesDir: cfg.Paths.Summaries,
		logger:       log,
	}, nil
}

func (s *implStore) Close() error {
	return s.db.Close()
}
