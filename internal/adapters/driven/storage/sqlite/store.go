package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vocalis-labs/vocalis/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
)

// Ensure Store implements the port interfaces.
var (
	_ driven.CatalogStore = (*Store)(nil)
	_ driven.MetaStore    = (*Store)(nil)
)

// Store is a SQLite-backed catalog and metadata store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.vocalis/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".vocalis", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL mode so a crash mid-rebuild leaves a structurally valid file
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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

// Close closes the database connection.
func (s *Store) Close() error {
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

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Catalog Store ====================

// UpsertIfAbsent inserts an entry unless its path is already catalogued.
func (s *Store) UpsertIfAbsent(ctx context.Context, entry domain.FileSystemEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (name, path, type, extension, parent, last_modified, size)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO NOTHING
	`, entry.Name, entry.Path, string(entry.Kind), entry.Extension,
		entry.ParentDirName, entry.LastModified.UnixNano(), entry.SizeBytes)

	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// Upsert inserts an entry, or refreshes last_modified and size for an
// existing path. Name, type and extension are deliberately left alone on
// conflict: the incremental pass does not re-derive them.
func (s *Store) Upsert(ctx context.Context, entry domain.FileSystemEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (name, path, type, extension, parent, last_modified, size)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			last_modified = excluded.last_modified,
			size = excluded.size
	`, entry.Name, entry.Path, string(entry.Kind), entry.Extension,
		entry.ParentDirName, entry.LastModified.UnixNano(), entry.SizeBytes)

	if err != nil {
		return fmt.Errorf("upserting entry: %w", err)
	}
	return nil
}

// EntriesWithPathPrefix returns path -> last modified time for every
// stored entry under root.
func (s *Store) EntriesWithPathPrefix(ctx context.Context, root string) (map[string]time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, last_modified FROM files
		WHERE path LIKE ? ESCAPE '\'
	`, escapeLike(root)+"%")
	if err != nil {
		return nil, fmt.Errorf("querying entries under %s: %w", root, err)
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		result[path] = time.Unix(0, mtime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return result, nil
}

// DeleteByPath removes the entry with the given path, if present.
func (s *Store) DeleteByPath(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM files WHERE path = ?", path)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

// QueryCandidates returns up to cap entries where every token matches
// name or path as a case-insensitive substring. Rows come back in id
// order so repeated queries see the same candidates in the same order.
func (s *Store) QueryCandidates(ctx context.Context, tokens []string, cap int) ([]domain.FileSystemEntry, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	var clauses []string
	var params []any
	for _, token := range tokens {
		clauses = append(clauses, `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(path) LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(strings.ToLower(token)) + "%"
		params = append(params, pattern, pattern)
	}
	params = append(params, cap)

	query := fmt.Sprintf(`
		SELECT id, name, path, type, extension, parent, last_modified, size
		FROM files
		WHERE %s
		ORDER BY id
		LIMIT ?
	`, strings.Join(clauses, " AND "))

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	var entries []domain.FileSystemEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}

	return entries, nil
}

// CatalogStats returns the number of catalogued files and folders.
func (s *Store) CatalogStats(ctx context.Context) (domain.CatalogStats, error) {
	var stats domain.CatalogStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN type = 'file' THEN 1 END),
			COUNT(CASE WHEN type = 'folder' THEN 1 END)
		FROM files
	`).Scan(&stats.Files, &stats.Folders)
	if err != nil {
		return domain.CatalogStats{}, fmt.Errorf("counting entries: %w", err)
	}
	return stats, nil
}

// ==================== Meta Store ====================

// GetMeta returns the value for key, or domain.ErrNotFound.
func (s *Store) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("getting meta %s: %w", key, err)
	}
	return value, nil
}

// SetMeta stores or overwrites the value for key.
func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("setting meta %s: %w", key, err)
	}
	return nil
}

// ==================== Helper Functions ====================

// scanEntry scans a files row into a domain entry.
func scanEntry(rows *sql.Rows) (domain.FileSystemEntry, error) {
	var entry domain.FileSystemEntry
	var kind string
	var mtime int64

	if err := rows.Scan(&entry.ID, &entry.Name, &entry.Path, &kind,
		&entry.Extension, &entry.ParentDirName, &mtime, &entry.SizeBytes); err != nil {
		return domain.FileSystemEntry{}, fmt.Errorf("scanning entry: %w", err)
	}

	entry.Kind = domain.EntryKind(kind)
	entry.LastModified = time.Unix(0, mtime)
	return entry, nil
}

// escapeLike escapes LIKE wildcards so tokens match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
