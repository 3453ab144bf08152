package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists samples in SQLite, keyed by corpus (source) id. The
// external collector writes JSON files; `typetone ingest` loads them here so
// extraction and the engagement selection strategy can read them back.
type Store struct {
	db *sql.DB
}

// OpenStore creates or opens the sample database at the given path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemoryStore creates an in-memory sample database (useful for testing).
func OpenMemoryStore() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS samples (
    id TEXT PRIMARY KEY,
    source_id TEXT NOT NULL,
    content TEXT NOT NULL,
    likes INTEGER NOT NULL DEFAULT 0,
    retweets INTEGER NOT NULL DEFAULT 0,
    replies INTEGER NOT NULL DEFAULT 0,
    bookmarks INTEGER NOT NULL DEFAULT 0,
    quotes INTEGER NOT NULL DEFAULT 0,
    kind TEXT NOT NULL DEFAULT 'original' CHECK(kind IN ('original','reply','quote')),
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_samples_source ON samples(source_id);
CREATE INDEX IF NOT EXISTS idx_samples_engagement ON samples(source_id, likes + 2*retweets DESC);
`

// SaveSamples upserts the given samples under sourceID.
func (s *Store) SaveSamples(ctx context.Context, sourceID string, samples []Sample) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO samples (id, source_id, content, likes, retweets, replies, bookmarks, quotes, kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   content = excluded.content, likes = excluded.likes, retweets = excluded.retweets,
		   replies = excluded.replies, bookmarks = excluded.bookmarks, quotes = excluded.quotes`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, smp := range samples {
		kind := smp.Kind
		if kind == "" {
			kind = KindOriginal
		}
		createdAt := smp.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx,
			smp.ID, sourceID, smp.Content, smp.Likes, smp.Retweets,
			smp.Replies, smp.Bookmarks, smp.Quotes, string(kind), createdAt,
		); err != nil {
			return fmt.Errorf("inserting sample %s: %w", smp.ID, err)
		}
	}
	return tx.Commit()
}

// LoadCorpus returns all samples for sourceID, newest first.
func (s *Store) LoadCorpus(ctx context.Context, sourceID string) (*Corpus, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, likes, retweets, replies, bookmarks, quotes, kind, created_at
		 FROM samples WHERE source_id = ? ORDER BY created_at DESC`, sourceID)
	if err != nil {
		return nil, fmt.Errorf("querying samples: %w", err)
	}
	defer rows.Close()

	samples, err := scanSamples(rows)
	if err != nil {
		return nil, err
	}
	return &Corpus{SourceID: sourceID, Samples: samples}, nil
}

// TopEngagement returns the n highest-engagement samples for sourceID.
func (s *Store) TopEngagement(ctx context.Context, sourceID string, n int) ([]Sample, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, likes, retweets, replies, bookmarks, quotes, kind, created_at
		 FROM samples WHERE source_id = ?
		 ORDER BY likes + 2*retweets DESC, created_at DESC LIMIT ?`, sourceID, n)
	if err != nil {
		return nil, fmt.Errorf("querying top samples: %w", err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

// GetSample returns one sample by id, or nil if absent.
func (s *Store) GetSample(ctx context.Context, id string) (*Sample, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, content, likes, retweets, replies, bookmarks, quotes, kind, created_at
		 FROM samples WHERE id = ?`, id)

	var smp Sample
	var kind string
	err := row.Scan(&smp.ID, &smp.Content, &smp.Likes, &smp.Retweets,
		&smp.Replies, &smp.Bookmarks, &smp.Quotes, &kind, &smp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning sample: %w", err)
	}
	smp.Kind = SampleKind(kind)
	return &smp, nil
}

// CountSamples returns the number of stored samples for sourceID.
func (s *Store) CountSamples(ctx context.Context, sourceID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM samples WHERE source_id = ?`, sourceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting samples: %w", err)
	}
	return n, nil
}

func scanSamples(rows *sql.Rows) ([]Sample, error) {
	var samples []Sample
	for rows.Next() {
		var smp Sample
		var kind string
		if err := rows.Scan(&smp.ID, &smp.Content, &smp.Likes, &smp.Retweets,
			&smp.Replies, &smp.Bookmarks, &smp.Quotes, &kind, &smp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning sample: %w", err)
		}
		smp.Kind = SampleKind(kind)
		samples = append(samples, smp)
	}
	return samples, rows.Err()
}
