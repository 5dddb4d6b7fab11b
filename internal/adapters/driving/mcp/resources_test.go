package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

func statsRequest() *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "catalog/stats"},
	}
}

func TestServer_handleStatsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("reports counts and last index time", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearcher{},
			Stats:  &mockStats{stats: domain.CatalogStats{Files: 120, Folders: 14}},
			Meta:   &mockMeta{values: map[string]string{metaLastIndexTime: "2026-08-20T10:00:00Z"}},
		})
		require.NoError(t, err)

		result, err := server.handleStatsResource(ctx, statsRequest())
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var payload statsPayload
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &payload))
		assert.Equal(t, int64(120), payload.Files)
		assert.Equal(t, int64(14), payload.Folders)
		assert.Equal(t, "2026-08-20T10:00:00Z", payload.LastIndexTime)
	})

	t.Run("never indexed omits last index time", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearcher{},
			Stats:  &mockStats{},
			Meta:   &mockMeta{},
		})
		require.NoError(t, err)

		result, err := server.handleStatsResource(ctx, statsRequest())
		require.NoError(t, err)

		var payload statsPayload
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &payload))
		assert.Empty(t, payload.LastIndexTime)
	})

	t.Run("stats failure propagates", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearcher{},
			Stats:  &mockStats{err: errors.New("store closed")},
		})
		require.NoError(t, err)

		_, err = server.handleStatsResource(ctx, statsRequest())
		assert.Error(t, err)
	})
}
