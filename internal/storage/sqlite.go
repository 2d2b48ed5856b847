// Package storage provides SQLite-based persistence for generation history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wander/internal/wander"
)

// ErrNotFound is returned when a requested generation does not exist.
var ErrNotFound = errors.New("storage: generation not found")

// Store manages the SQLite database connection for generation history.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// GenerationEntry is a recorded generation.
type GenerationEntry struct {
	ID         int64
	Generation wander.Generation
	Source     string // Viewer that started it: "terminal", "window", "ssh:<user>", ...
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; SSH sessions share this handle.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS generations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			agents INTEGER NOT NULL,
			resolution INTEGER NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_generations_created ON generations(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGeneration records a generation started by the given viewer.
// Returns the ID of the inserted record.
func (s *Store) SaveGeneration(gen wander.Generation, source string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO generations (seed, agents, resolution, source) VALUES (?, ?, ?, ?)",
		gen.Seed, gen.Agents, gen.Resolution, source,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save generation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentGenerations returns up to limit generations, newest first.
func (s *Store) RecentGenerations(limit int) ([]GenerationEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, agents, resolution, source, created_at
		 FROM generations
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query generations: %w", err)
	}
	defer rows.Close()

	var entries []GenerationEntry
	for rows.Next() {
		e, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GenerationByID retrieves one generation. Returns ErrNotFound if it does not exist.
func (s *Store) GenerationByID(id int64) (GenerationEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, agents, resolution, source, created_at
		 FROM generations
		 WHERE id = ?`,
		id,
	)

	e, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GenerationEntry{}, ErrNotFound
	}
	return e, err
}

// CountGenerations returns the number of recorded generations.
func (s *Store) CountGenerations() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM generations").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count generations: %w", err)
	}
	return n, nil
}

// ClearGenerations deletes all recorded generations.
func (s *Store) ClearGenerations() error {
	if _, err := s.db.Exec("DELETE FROM generations"); err != nil {
		return fmt.Errorf("storage: cannot clear generations: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(row scanner) (GenerationEntry, error) {
	var e GenerationEntry
	var createdAt any
	err := row.Scan(
		&e.ID,
		&e.Generation.Seed,
		&e.Generation.Agents,
		&e.Generation.Resolution,
		&e.Source,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
