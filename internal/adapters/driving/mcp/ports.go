package mcp

import (
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers ranked catalog queries.
	Search driving.Searcher

	// Indexer keeps the catalog in sync with the configured roots.
	Indexer driving.Indexer

	// Actions executes structured open/list file actions.
	Actions driving.ActionHandler

	// Stats reports catalog size for the stats resource.
	Stats driven.StatsProvider

	// Meta exposes indexing metadata for the stats resource.
	Meta driven.MetaStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearcher
	}
	// Indexer, Actions, Stats and Meta are optional; the matching tools
	// and resources are simply not registered.
	return nil
}
