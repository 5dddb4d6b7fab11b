package driving

import (
	"context"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// Searcher answers fuzzy name/path queries with a ranked entry list.
type Searcher interface {
	// Search returns up to limit entries ordered by descending score.
	// An empty or unmatchable query yields an empty list, never an error.
	Search(ctx context.Context, query string, limit int) ([]domain.FileSystemEntry, error)
}
