package driving

import "context"

// Indexer keeps the catalog in sync with the configured roots.
type Indexer interface {
	// EnsureIndex indexes each root: a full rebuild on the first run for
	// that root, an incremental update afterwards. Idempotent; call once
	// per process start.
	EnsureIndex(ctx context.Context, roots []string) error
}
