package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driving"
	"github.com/vocalis-labs/vocalis/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.Indexer = (*IndexService)(nil)

// Meta keys maintained by the indexer.
const (
	// metaRootPrefix marks a root as having completed its first full
	// rebuild: "root::<absolutePath>" -> "indexed".
	metaRootPrefix = "root::"

	// metaLastIndexTime records the most recent indexing pass.
	metaLastIndexTime = "last_index_time"
)

// IndexService keeps the catalog in sync with the configured roots.
type IndexService struct {
	store  driven.CatalogStore
	meta   driven.MetaStore
	walker driven.Walker
	policy domain.IndexPolicy
}

// NewIndexService creates an indexer over the given store and walker.
func NewIndexService(
	store driven.CatalogStore,
	meta driven.MetaStore,
	walker driven.Walker,
	policy domain.IndexPolicy,
) *IndexService {
	return &IndexService{
		store:  store,
		meta:   meta,
		walker: walker,
		policy: policy,
	}
}

// EnsureIndex indexes each root: a full rebuild the first time a root is
// seen, an incremental update afterwards. Idempotent.
func (s *IndexService) EnsureIndex(ctx context.Context, roots []string) error {
	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving root %s: %w", root, err)
		}
		if err := s.ensureRoot(ctx, abs); err != nil {
			return fmt.Errorf("indexing %s: %w", abs, err)
		}
	}
	return nil
}

// ensureRoot picks the indexing strategy for one root and records the
// pass in the meta table.
func (s *IndexService) ensureRoot(ctx context.Context, root string) error {
	rootKey := metaRootPrefix + root

	_, err := s.meta.GetMeta(ctx, rootKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Info("First index build for %s", root)
		if err := s.fullRebuild(ctx, root); err != nil {
			return err
		}
		// A lost marker is non-critical: the next run simply rebuilds.
		if err := s.meta.SetMeta(ctx, rootKey, "indexed"); err != nil {
			logger.Warn("Recording root marker for %s: %v", root, err)
		}

	case err != nil:
		return fmt.Errorf("reading root marker: %w", err)

	default:
		logger.Info("Incrementally updating %s", root)
		if err := s.incrementalUpdate(ctx, root); err != nil {
			return err
		}
	}

	if err := s.meta.SetMeta(ctx, metaLastIndexTime, time.Now().Format(time.RFC3339)); err != nil {
		logger.Warn("Recording last index time: %v", err)
	}
	return nil
}

// fullRebuild walks the whole tree and inserts every surviving entry.
// Insert-if-absent semantics make the rebuild safely re-runnable; an
// existing row keeps the size and timestamp captured when it was first
// seen, until an incremental pass observes a timestamp delta.
func (s *IndexService) fullRebuild(ctx context.Context, root string) error {
	runID := uuid.NewString()
	logger.Section("Full Rebuild")
	logger.Debug("Run %s: root=%s", runID, root)

	count := 0
	err := s.walker.Walk(ctx, root, s.policy, func(entry domain.FileSystemEntry) error {
		if entry.LastModified.IsZero() {
			// Stat failed mid-walk; nothing to catalog yet.
			return nil
		}
		if err := s.store.UpsertIfAbsent(ctx, entry); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("full rebuild: %w", err)
	}

	logger.Info("Run %s: %d entries catalogued", runID, count)
	return nil
}

// incrementalUpdate reconciles the stored catalog under root with the
// current filesystem state: inserts new paths, refreshes changed
// timestamps, and deletes paths no longer present.
func (s *IndexService) incrementalUpdate(ctx context.Context, root string) error {
	runID := uuid.NewString()
	logger.Section("Incremental Update")
	logger.Debug("Run %s: root=%s", runID, root)

	stored, err := s.store.EntriesWithPathPrefix(ctx, root)
	if err != nil {
		return fmt.Errorf("loading stored entries: %w", err)
	}

	seen := make(map[string]bool, len(stored))
	var inserted, refreshed int

	err = s.walker.Walk(ctx, root, s.policy, func(entry domain.FileSystemEntry) error {
		seen[entry.Path] = true

		if entry.LastModified.IsZero() {
			// Stat failed mid-walk: the path exists, so its stored row
			// stays as-is rather than being deleted below.
			return nil
		}

		storedMtime, exists := stored[entry.Path]
		switch {
		case !exists:
			inserted++
			return s.store.Upsert(ctx, entry)
		case !storedMtime.Equal(entry.LastModified):
			// Only timestamp and size are refreshed; name, kind and
			// extension are not re-derived.
			refreshed++
			return s.store.Upsert(ctx, entry)
		default:
			return nil
		}
	})
	if err != nil {
		return fmt.Errorf("incremental walk: %w", err)
	}

	// Set-difference deletion reflects renames and removals.
	var deleted int
	for path := range stored {
		if seen[path] {
			continue
		}
		if err := s.store.DeleteByPath(ctx, path); err != nil {
			return fmt.Errorf("deleting stale entry %s: %w", path, err)
		}
		deleted++
	}

	logger.Info("Run %s: %d inserted, %d refreshed, %d deleted",
		runID, inserted, refreshed, deleted)
	return nil
}
