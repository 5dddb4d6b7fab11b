// Package fswalk implements the filesystem walker used by the indexer.
//
// The walk is a plain recursive traversal with an explicit
// "should descend" predicate: excluded directories are neither reported
// nor entered, files failing the extension policy are skipped, and
// per-entry errors (permission denied, entry deleted mid-scan) skip only
// that entry. An entry that is listed but cannot be stat'ed is still
// reported, with zero metadata, so callers can tell "present but
// unreadable" from "gone".
package fswalk

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/logger"
)

// Ensure Walker implements the port interface.
var _ driven.Walker = (*Walker)(nil)

// Walker traverses local filesystem roots.
type Walker struct{}

// NewWalker creates a local filesystem walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk traverses root depth-first, reporting every surviving entry to fn.
// The root directory itself is not reported.
func (w *Walker) Walk(ctx context.Context, root string, policy domain.IndexPolicy, fn driven.WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			// Unreadable or vanished entry: skip it, keep walking.
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if !policy.ShouldDescend(d.Name()) {
				return fs.SkipDir
			}
			return fn(statEntry(path, d, domain.KindFolder))
		}

		if !policy.ShouldIndexFile(d.Name()) {
			return nil
		}
		return fn(statEntry(path, d, domain.KindFile))
	})
}

// statEntry builds a catalog entry from a directory entry. When the
// entry can no longer be stat'ed the identity fields are still filled
// in and LastModified stays zero: the path was observed and must not be
// treated as deleted.
func statEntry(path string, d fs.DirEntry, kind domain.EntryKind) domain.FileSystemEntry {
	ext := ""
	if kind == domain.KindFile {
		ext = domain.ExtensionOf(d.Name())
	}

	entry := domain.FileSystemEntry{
		Name:          d.Name(),
		Path:          path,
		Kind:          kind,
		Extension:     ext,
		ParentDirName: filepath.Base(filepath.Dir(path)),
	}

	info, err := d.Info()
	if err != nil {
		logger.Warn("stat %s: %v", path, err)
		return entry
	}

	entry.LastModified = info.ModTime()
	entry.SizeBytes = info.Size()
	return entry
}
