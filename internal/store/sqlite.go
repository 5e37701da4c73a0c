package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"jobpulse/internal/model"
)

// Entry is one row of publish history.
type Entry struct {
	Fingerprint string
	Title       string
	Company     string
	Level       model.Level
	FirstSeen   time.Time
}

// SQLiteStore tracks published job fingerprints in a SQLite database.
// Besides the fingerprint it keeps title, company and level so the publish
// history can be browsed later.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the posted_jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS posted_jobs (
		fingerprint TEXT PRIMARY KEY,
		title       TEXT,
		company     TEXT,
		level       TEXT,
		first_seen  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating posted_jobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// HasSeen returns true if the given fingerprint has already been recorded.
func (s *SQLiteStore) HasSeen(fingerprint string) (bool, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM posted_jobs WHERE fingerprint = ?", fingerprint).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking seen status for %s: %w", fingerprint, err)
	}
	return true, nil
}

// MarkSeen records a published job. If the fingerprint already exists the call
// is a no-op; the original first_seen timestamp is kept.
func (s *SQLiteStore) MarkSeen(job model.Job) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO posted_jobs (fingerprint, title, company, level) VALUES (?, ?, ?, ?)",
		job.Fingerprint, job.Title, job.Company, string(job.Level),
	)
	if err != nil {
		return fmt.Errorf("marking job %s as seen: %w", job.Fingerprint, err)
	}
	return nil
}

// Expire deletes entries older than the given retention window.
func (s *SQLiteStore) Expire(window time.Duration) error {
	cutoff := time.Now().Add(-window)
	_, err := s.db.Exec("DELETE FROM posted_jobs WHERE first_seen < ?", cutoff)
	if err != nil {
		return fmt.Errorf("expiring entries older than %v: %w", window, err)
	}
	return nil
}

// Recent returns the most recently published entries, newest first.
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT fingerprint, title, company, level, first_seen FROM posted_jobs ORDER BY first_seen DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var level string
		if err := rows.Scan(&e.Fingerprint, &e.Title, &e.Company, &level, &e.FirstSeen); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Level = model.Level(level)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
