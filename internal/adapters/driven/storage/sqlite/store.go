// Package sqlite implements the dictionary dataset store on top of an
// FTS5-indexed SQLite database using the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/openlexica/lexa-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/openlexica/lexa-cli/internal/core/domain"
	"github.com/openlexica/lexa-cli/internal/core/ports/driven"
)

// Store is an SQLite-backed dictionary dataset. Queries share the handle
// through a read lock; ReplaceAll takes the write lock so readers never
// see a half-swapped database file.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

var _ driven.DictionaryStore = (*Store)(nil)

// NewStore opens (or creates) the dictionary database in the specified
// data directory. If dataDir is empty, defaults to ~/.lexa/data/dictionary.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lexa", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "dictionary.db")

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// openDB opens a database file with WAL mode for better concurrency.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// QueryPrefix runs a ranked prefix match against the full-text index.
// The wildcard is appended here so callers pass the bare normalized query.
func (s *Store) QueryPrefix(ctx context.Context, query string) ([]domain.DictionaryEntry, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.word, e.definition, e.ipa, e.ipa_alt
		FROM entries_fts f
		JOIN entries e ON e.id = f.rowid
		WHERE entries_fts MATCH ?
		ORDER BY f.rank
		LIMIT ?
	`, query+"*", domain.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuery, err)
	}
	defer rows.Close()

	var results []domain.DictionaryEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var e domain.DictionaryEntry
		if err := rows.Scan(&e.ID, &e.Word, &e.Definition, &e.IPA, &e.IPAAlt); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuery, err)
	}

	return results, nil
}

// FetchRandom returns one uniformly-at-random entry from the dataset.
func (s *Store) FetchRandom(ctx context.Context) (*domain.DictionaryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, word, definition, ipa, ipa_alt
		FROM entries
		ORDER BY RANDOM()
		LIMIT 1
	`)

	var e domain.DictionaryEntry
	if err := row.Scan(&e.ID, &e.Word, &e.Definition, &e.IPA, &e.IPAAlt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	return &e, nil
}

// Count returns the number of entries in the dataset.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// InsertEntries stores a batch of entries in a single transaction.
// The FTS index is kept in sync by the entries table triggers.
func (s *Store) InsertEntries(ctx context.Context, entries []domain.DictionaryEntry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (word, definition, ipa, ipa_alt)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Word, e.Definition, e.IPA, e.IPAAlt); err != nil {
			return fmt.Errorf("inserting entry %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ReplaceAll atomically swaps the backing database for the given bytes.
// The payload is written to a temporary file next to the live database,
// verified to be a readable dictionary, then committed with a rename.
// On any failure the prior dataset stays in place and readable.
func (s *Store) ReplaceAll(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".dictionary-%s.tmp", uuid.NewString()))

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("%w: writing temp file: %v", domain.ErrReplace, err)
	}
	defer os.Remove(tmpPath) //nolint:errcheck

	if err := verifyDataset(ctx, tmpPath); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrReplace, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The live handle must be closed before the rename; SQLite keeps the
	// inode open otherwise and WAL sidecars would attach to the old file.
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing database: %v", domain.ErrReplace, err)
	}

	os.Remove(s.path + "-wal") //nolint:errcheck
	os.Remove(s.path + "-shm") //nolint:errcheck

	if err := os.Rename(tmpPath, s.path); err != nil {
		// Rename failed: reopen the old file so the store stays usable.
		if db, reopenErr := openDB(s.path); reopenErr == nil {
			s.db = db
		}
		return fmt.Errorf("%w: renaming dataset: %v", domain.ErrReplace, err)
	}

	db, err := openDB(s.path)
	if err != nil {
		return fmt.Errorf("%w: reopening database: %v", domain.ErrReplace, err)
	}
	s.db = db

	if err := s.migrate(migrations.FS); err != nil {
		return fmt.Errorf("%w: migrating replacement: %v", domain.ErrReplace, err)
	}

	return nil
}

// verifyDataset opens a candidate database file and checks it carries a
// non-empty entries table before it is allowed to replace the live one.
func verifyDataset(ctx context.Context, path string) error {
	db, err := openDB(path)
	if err != nil {
		return fmt.Errorf("opening candidate: %w", err)
	}
	defer db.Close()

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return fmt.Errorf("verifying candidate: %w", err)
	}
	if count == 0 {
		return errors.New("candidate dataset has no entries")
	}
	return nil
}
