package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for Vocalis resources.
	uriScheme = "vocalis://"

	// metaLastIndexTime mirrors the indexer's meta key.
	metaLastIndexTime = "last_index_time"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Stats == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog/stats",
		Name:        "catalog-stats",
		Description: "Entry counts and the time of the last indexing pass",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// statsPayload is the JSON shape of the catalog stats resource.
type statsPayload struct {
	Files         int64  `json:"files"`
	Folders       int64  `json:"folders"`
	LastIndexTime string `json:"last_index_time,omitempty"`
}

// handleStatsResource returns catalog entry counts and the last index time.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Stats.CatalogStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading catalog stats: %w", err)
	}

	payload := statsPayload{
		Files:   stats.Files,
		Folders: stats.Folders,
	}

	if s.ports.Meta != nil {
		lastIndexed, err := s.ports.Meta.GetMeta(ctx, metaLastIndexTime)
		switch {
		case err == nil:
			payload.LastIndexTime = lastIndexed
		case errors.Is(err, domain.ErrNotFound):
			// Never indexed yet.
		default:
			return nil, fmt.Errorf("reading last index time: %w", err)
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
