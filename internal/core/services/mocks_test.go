package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
)

// memStore is an in-memory CatalogStore + MetaStore for service tests.
type memStore struct {
	entries map[string]domain.FileSystemEntry
	meta    map[string]string

	upsertErr  error
	setMetaErr error
}

func newMemStore() *memStore {
	return &memStore{
		entries: make(map[string]domain.FileSystemEntry),
		meta:    make(map[string]string),
	}
}

func (m *memStore) UpsertIfAbsent(_ context.Context, entry domain.FileSystemEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if _, exists := m.entries[entry.Path]; exists {
		return nil
	}
	m.entries[entry.Path] = entry
	return nil
}

func (m *memStore) Upsert(_ context.Context, entry domain.FileSystemEntry) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if existing, exists := m.entries[entry.Path]; exists {
		existing.LastModified = entry.LastModified
		existing.SizeBytes = entry.SizeBytes
		m.entries[entry.Path] = existing
		return nil
	}
	m.entries[entry.Path] = entry
	return nil
}

func (m *memStore) EntriesWithPathPrefix(_ context.Context, root string) (map[string]time.Time, error) {
	result := make(map[string]time.Time)
	for path, entry := range m.entries {
		if strings.HasPrefix(path, root) {
			result[path] = entry.LastModified
		}
	}
	return result, nil
}

func (m *memStore) DeleteByPath(_ context.Context, path string) error {
	delete(m.entries, path)
	return nil
}

func (m *memStore) QueryCandidates(_ context.Context, tokens []string, cap int) ([]domain.FileSystemEntry, error) {
	var result []domain.FileSystemEntry
	for _, entry := range m.entries {
		if len(result) == cap {
			break
		}
		match := true
		for _, token := range tokens {
			name := strings.ToLower(entry.Name)
			path := strings.ToLower(entry.Path)
			if !strings.Contains(name, token) && !strings.Contains(path, token) {
				match = false
				break
			}
		}
		if match {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) GetMeta(_ context.Context, key string) (string, error) {
	value, ok := m.meta[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (m *memStore) SetMeta(_ context.Context, key, value string) error {
	if m.setMetaErr != nil {
		return m.setMetaErr
	}
	m.meta[key] = value
	return nil
}

// scriptedWalker replays a fixed entry list instead of touching disk.
type scriptedWalker struct {
	entries []domain.FileSystemEntry
	walks   int
}

func (w *scriptedWalker) Walk(ctx context.Context, _ string, _ domain.IndexPolicy, fn driven.WalkFunc) error {
	w.walks++
	for _, entry := range w.entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
	return nil
}

// recordingOpener records open calls and can be told to fail.
type recordingOpener struct {
	opened []string
	fail   bool
}

func (o *recordingOpener) Open(entry domain.FileSystemEntry) error {
	o.opened = append(o.opened, entry.Path)
	if o.fail {
		return errors.New("no handler registered")
	}
	return nil
}

// stubSearcher returns a canned result list.
type stubSearcher struct {
	results []domain.FileSystemEntry
	err     error

	lastQuery string
	lastLimit int
}

func (s *stubSearcher) Search(_ context.Context, query string, limit int) ([]domain.FileSystemEntry, error) {
	s.lastQuery = query
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func fileEntry(path string, modified time.Time) domain.FileSystemEntry {
	name := path[strings.LastIndex(path, "/")+1:]
	return domain.FileSystemEntry{
		Name:         name,
		Path:         path,
		Kind:         domain.KindFile,
		Extension:    domain.ExtensionOf(name),
		LastModified: modified,
	}
}

func folderEntry(path string, modified time.Time) domain.FileSystemEntry {
	entry := fileEntry(path, modified)
	entry.Kind = domain.KindFolder
	entry.Extension = ""
	return entry
}
