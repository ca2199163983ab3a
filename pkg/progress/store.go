// Package progress records completed walkthroughs in a SQLite database
// inside the project directory.
package progress

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FileName is the database file name inside the project directory
const FileName = "progress.db"

// Completion is one finished walkthrough
type Completion struct {
	Key         string    `json:"key" yaml:"key"`
	Title       string    `json:"title" yaml:"title"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
}

// Summary aggregates the completions of one tutorial
type Summary struct {
	Key           string    `json:"key" yaml:"key"`
	Title         string    `json:"title" yaml:"title"`
	Count         int       `json:"count" yaml:"count"`
	LastCompleted time.Time `json:"last_completed" yaml:"last_completed"`
}

// Store is a completion log backed by SQLite
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for progress database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open progress database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tutorial_key TEXT NOT NULL,
			title TEXT NOT NULL,
			completed_at INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create completions table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_completions_key ON completions(tutorial_key)`); err != nil {
		return fmt.Errorf("create completions index: %w", err)
	}
	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a completion
func (s *Store) Record(ctx context.Context, key, title string, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO completions (tutorial_key, title, completed_at) VALUES (?, ?, ?)`,
		key, title, at.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to record completion of %s: %w", key, err)
	}
	return nil
}

// Completions returns every completion, newest first
func (s *Store) Completions(ctx context.Context) ([]Completion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tutorial_key, title, completed_at FROM completions ORDER BY completed_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var at int64
		if err := rows.Scan(&c.Key, &c.Title, &at); err != nil {
			return nil, fmt.Errorf("failed to read completion: %w", err)
		}
		c.CompletedAt = time.Unix(0, at).UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}

// Summaries returns per-tutorial totals, most recently completed first
func (s *Store) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tutorial_key, MAX(title), COUNT(*), MAX(completed_at)
		FROM completions
		GROUP BY tutorial_key
		ORDER BY MAX(completed_at) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress summary: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var last int64
		if err := rows.Scan(&sum.Key, &sum.Title, &sum.Count, &last); err != nil {
			return nil, fmt.Errorf("failed to read progress summary: %w", err)
		}
		sum.LastCompleted = time.Unix(0, last).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Reset deletes every completion and returns how many were removed
func (s *Store) Reset(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM completions`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset progress: %w", err)
	}
	return res.RowsAffected()
}
