package driven

import (
	"context"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// WalkFunc receives one surviving entry during a walk. Returning an error
// aborts the walk.
type WalkFunc func(entry domain.FileSystemEntry) error

// Walker traverses a filesystem root, applying an IndexPolicy: excluded
// directories are neither reported nor descended into and files failing
// the extension policy are skipped. An entry whose stat fails mid-walk
// is still reported with a zero LastModified, so callers never mistake
// an unreadable path for a deleted one. Folders (except the root itself)
// are reported before their contents.
type Walker interface {
	Walk(ctx context.Context, root string, policy domain.IndexPolicy, fn WalkFunc) error
}
