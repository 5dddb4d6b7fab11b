package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

func testEntry() domain.FileSystemEntry {
	return domain.FileSystemEntry{
		Name:          "budget.xlsx",
		Path:          "/docs/budget.xlsx",
		Kind:          domain.KindFile,
		Extension:     ".xlsx",
		ParentDirName: "docs",
		LastModified:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		SizeBytes:     2048,
	}
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked entries", func(t *testing.T) {
		mockSearch := &mockSearcher{
			results: []domain.FileSystemEntry{testEntry()},
		}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		input := SearchInput{Query: "budget", Limit: 3}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "budget.xlsx", output.Results[0].Name)
		assert.Equal(t, "/docs/budget.xlsx", output.Results[0].Path)
		assert.Equal(t, "file", output.Results[0].Kind)
		assert.Equal(t, ".xlsx", output.Results[0].Extension)
		assert.Equal(t, "docs", output.Results[0].Parent)
		assert.Equal(t, int64(2048), output.Results[0].SizeBytes)
		assert.Equal(t, "budget", mockSearch.lastQuery)
		assert.Equal(t, 3, mockSearch.lastLimit)
	})

	t.Run("propagates search error", func(t *testing.T) {
		mockSearch := &mockSearcher{err: errors.New("store closed")}
		server, err := NewServer(&Ports{Search: mockSearch})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x"})
		assert.Error(t, err)
	})
}

func TestServer_handleEnsureIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("passes roots through", func(t *testing.T) {
		indexer := &mockIndexer{}
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Indexer: indexer})
		require.NoError(t, err)

		input := EnsureIndexInput{Roots: []string{"/home/u/docs"}}
		_, output, err := server.handleEnsureIndex(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, []string{"/home/u/docs"}, indexer.roots)
		assert.Equal(t, []string{"/home/u/docs"}, output.Indexed)
	})

	t.Run("propagates indexer error", func(t *testing.T) {
		indexer := &mockIndexer{err: errors.New("walk failed")}
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Indexer: indexer})
		require.NoError(t, err)

		_, _, err = server.handleEnsureIndex(ctx, nil, EnsureIndexInput{Roots: []string{"/d"}})
		assert.Error(t, err)
	})
}

func TestServer_handleFileAction(t *testing.T) {
	ctx := context.Background()

	t.Run("translates outcome and matches", func(t *testing.T) {
		actions := &mockActions{
			result: domain.ActionResult{
				Outcome: domain.OutcomeAmbiguous,
				Matches: []domain.FileSystemEntry{testEntry(), testEntry()},
			},
		}
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Actions: actions})
		require.NoError(t, err)

		input := FileActionInput{Action: "open", Kind: "file", Target: "budget"}
		_, output, err := server.handleFileAction(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "ambiguous", output.Outcome)
		assert.Len(t, output.Matches, 2)
		assert.Equal(t, domain.ActionOpen, actions.lastAction)
		assert.Equal(t, domain.KindFile, actions.lastKind)
		assert.Equal(t, "budget", actions.lastTarget)
	})

	t.Run("unknown action is rejected before dispatch", func(t *testing.T) {
		actions := &mockActions{}
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Actions: actions})
		require.NoError(t, err)

		input := FileActionInput{Action: "delete", Kind: "file", Target: "budget"}
		_, _, err = server.handleFileAction(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownAction)
		assert.Empty(t, actions.lastTarget)
	})

	t.Run("invalid kind is rejected", func(t *testing.T) {
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Actions: &mockActions{}})
		require.NoError(t, err)

		input := FileActionInput{Action: "open", Kind: "directory", Target: "docs"}
		_, _, err = server.handleFileAction(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("listed outcome carries children", func(t *testing.T) {
		actions := &mockActions{
			result: domain.ActionResult{
				Outcome:  domain.OutcomeListed,
				Children: []string{"a.txt", "b.txt"},
			},
		}
		server, err := NewServer(&Ports{Search: &mockSearcher{}, Actions: actions})
		require.NoError(t, err)

		input := FileActionInput{Action: "list", Kind: "folder", Target: "docs"}
		_, output, err := server.handleFileAction(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "listed", output.Outcome)
		assert.Equal(t, []string{"a.txt", "b.txt"}, output.Children)
	})
}
