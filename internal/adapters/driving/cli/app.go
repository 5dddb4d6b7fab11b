package cli

import (
	"fmt"

	"github.com/vocalis-labs/vocalis/internal/adapters/driven/config/file"
	"github.com/vocalis-labs/vocalis/internal/adapters/driven/fswalk"
	"github.com/vocalis-labs/vocalis/internal/adapters/driven/opener"
	"github.com/vocalis-labs/vocalis/internal/adapters/driven/storage/sqlite"
	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/core/services"
)

// app bundles the wired services for one command invocation. The store
// is opened per logical operation and closed when the command finishes.
type app struct {
	cfg   driven.ConfigStore
	store *sqlite.Store

	indexer  *services.IndexService
	searcher *services.RankService
	actions  *services.ActionService
	session  *services.SelectionSession
}

// newApp loads configuration, opens the catalog store and wires the
// services. Callers must Close the returned app.
func newApp() (*app, error) {
	cfg, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.GetString(file.KeyDataDir)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening catalog store: %w", err)
	}

	policy := domain.PolicyFromLists(
		cfg.GetStringSlice(file.KeyExcludedDirs),
		cfg.GetStringSlice(file.KeyExcludedExtensions),
		cfg.GetStringSlice(file.KeyIncludedExtensions),
	)

	osOpener := opener.NewOpener()
	searcher := services.NewRankService(store)

	return &app{
		cfg:      cfg,
		store:    store,
		indexer:  services.NewIndexService(store, store, fswalk.NewWalker(), policy),
		searcher: searcher,
		actions:  services.NewActionService(searcher, osOpener, cfg.GetInt(file.KeySearchLimit)),
		session:  services.NewSelectionSession(osOpener),
	}, nil
}

// Close releases the catalog store.
func (a *app) Close() error {
	return a.store.Close()
}

// configuredRoots returns the index roots from config.
func (a *app) configuredRoots() []string {
	return a.cfg.GetStringSlice(file.KeyRoots)
}
