package driven

import (
	"context"
	"time"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// CatalogStore persists filesystem entries. Paths are the unique key.
type CatalogStore interface {
	// UpsertIfAbsent inserts an entry unless its path already exists.
	// Used by full rebuilds so they are safely re-runnable.
	UpsertIfAbsent(ctx context.Context, entry domain.FileSystemEntry) error

	// Upsert inserts an entry, or refreshes last_modified and size when
	// the path already exists. Used by incremental updates.
	Upsert(ctx context.Context, entry domain.FileSystemEntry) error

	// EntriesWithPathPrefix returns path -> last modified time for every
	// stored entry whose path starts with root.
	EntriesWithPathPrefix(ctx context.Context, root string) (map[string]time.Time, error)

	// DeleteByPath removes the entry with the given path, if present.
	DeleteByPath(ctx context.Context, path string) error

	// QueryCandidates returns up to cap entries where every token is a
	// case-insensitive substring of the name or the path. This coarse
	// prefilter is the only retrieval path; ranking refines it.
	QueryCandidates(ctx context.Context, tokens []string, cap int) ([]domain.FileSystemEntry, error)

	// Close releases the underlying store.
	Close() error
}

// MetaStore persists arbitrary key/value metadata alongside the catalog.
// The indexer uses it for root rebuild markers and the last index time.
type MetaStore interface {
	// GetMeta returns the value for key, or domain.ErrNotFound.
	GetMeta(ctx context.Context, key string) (string, error)

	// SetMeta stores or overwrites the value for key.
	SetMeta(ctx context.Context, key, value string) error
}
