package mcp

import (
	"context"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// mockSearcher is a mock implementation of driving.Searcher.
type mockSearcher struct {
	results []domain.FileSystemEntry
	err     error

	lastQuery string
	lastLimit int
}

func (m *mockSearcher) Search(_ context.Context, query string, limit int) ([]domain.FileSystemEntry, error) {
	m.lastQuery = query
	m.lastLimit = limit
	return m.results, m.err
}

// mockIndexer is a mock implementation of driving.Indexer.
type mockIndexer struct {
	roots []string
	err   error
}

func (m *mockIndexer) EnsureIndex(_ context.Context, roots []string) error {
	m.roots = roots
	return m.err
}

// mockActions is a mock implementation of driving.ActionHandler.
type mockActions struct {
	result domain.ActionResult
	err    error

	lastAction domain.Action
	lastKind   domain.EntryKind
	lastTarget string
}

func (m *mockActions) HandleFileAction(_ context.Context, action domain.Action, kind domain.EntryKind, target string) (domain.ActionResult, error) {
	m.lastAction = action
	m.lastKind = kind
	m.lastTarget = target
	return m.result, m.err
}

func (m *mockActions) OpenEntry(_ domain.FileSystemEntry) bool {
	return m.err == nil
}

// mockStats is a mock implementation of driven.StatsProvider.
type mockStats struct {
	stats domain.CatalogStats
	err   error
}

func (m *mockStats) CatalogStats(_ context.Context) (domain.CatalogStats, error) {
	return m.stats, m.err
}

// mockMeta is a mock implementation of driven.MetaStore.
type mockMeta struct {
	values map[string]string
}

func (m *mockMeta) GetMeta(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (m *mockMeta) SetMeta(_ context.Context, key, value string) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}
