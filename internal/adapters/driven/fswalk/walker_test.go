package fswalk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// buildTree creates a small fixture tree and returns its root.
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	mkdir := func(parts ...string) string {
		dir := filepath.Join(append([]string{root}, parts...)...)
		require.NoError(t, os.MkdirAll(dir, 0755))
		return dir
	}
	write := func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	docs := mkdir("docs")
	write(filepath.Join(docs, "report.txt"))
	write(filepath.Join(docs, "setup.exe"))

	nm := mkdir("node_modules")
	write(filepath.Join(nm, "index.js"))

	nested := mkdir("docs", "archive")
	write(filepath.Join(nested, "old_notes.md"))

	return root
}

func collect(t *testing.T, root string, policy domain.IndexPolicy) []domain.FileSystemEntry {
	t.Helper()
	var entries []domain.FileSystemEntry
	err := NewWalker().Walk(context.Background(), root, policy, func(e domain.FileSystemEntry) error {
		entries = append(entries, e)
		return nil
	})
	require.NoError(t, err)
	return entries
}

func TestWalker_PrunesExcludedDirs(t *testing.T) {
	root := buildTree(t)
	entries := collect(t, root, domain.DefaultIndexPolicy())

	for _, e := range entries {
		assert.NotContains(t, e.Path, "node_modules",
			"excluded directory leaked into walk: %s", e.Path)
	}
}

func TestWalker_AppliesExtensionPolicy(t *testing.T) {
	root := buildTree(t)
	entries := collect(t, root, domain.DefaultIndexPolicy())

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}

	assert.Contains(t, names, "report.txt")
	assert.Contains(t, names, "old_notes.md")
	assert.NotContains(t, names, "setup.exe")
	assert.NotContains(t, names, "index.js")
}

func TestWalker_ReportsFoldersWithoutExtensionFilter(t *testing.T) {
	root := buildTree(t)
	entries := collect(t, root, domain.DefaultIndexPolicy())

	var folders []string
	for _, e := range entries {
		if e.IsFolder() {
			folders = append(folders, e.Name)
			assert.Empty(t, e.Extension, "folders carry no extension")
		}
	}

	assert.Contains(t, folders, "docs")
	assert.Contains(t, folders, "archive")
	assert.NotContains(t, folders, "node_modules")
	assert.NotContains(t, folders, filepath.Base(root), "root itself is not reported")
}

func TestWalker_EntryFields(t *testing.T) {
	root := buildTree(t)
	entries := collect(t, root, domain.DefaultIndexPolicy())

	var report *domain.FileSystemEntry
	for i := range entries {
		if entries[i].Name == "report.txt" {
			report = &entries[i]
		}
	}
	require.NotNil(t, report)

	assert.Equal(t, domain.KindFile, report.Kind)
	assert.Equal(t, ".txt", report.Extension)
	assert.Equal(t, "docs", report.ParentDirName)
	assert.True(t, strings.HasPrefix(report.Path, root))
	assert.Equal(t, int64(1), report.SizeBytes)
	assert.False(t, report.LastModified.IsZero())
}

func TestWalker_CancelledContext(t *testing.T) {
	root := buildTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWalker().Walk(ctx, root, domain.DefaultIndexPolicy(), func(domain.FileSystemEntry) error {
		t.Fatal("walk func must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
