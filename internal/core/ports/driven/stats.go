package driven

import (
	"context"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// StatsProvider reports catalog size for status surfaces.
type StatsProvider interface {
	// CatalogStats returns entry counts by kind.
	CatalogStats(ctx context.Context) (domain.CatalogStats, error)
}
