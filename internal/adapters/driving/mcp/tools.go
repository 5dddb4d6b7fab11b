package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// SearchInput is the input schema for the search_catalog tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the spoken or typed file query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// SearchOutput is the output schema for the search_catalog tool.
type SearchOutput struct {
	Results []EntryOutput `json:"results"`
	Count   int           `json:"count"`
}

// EntryOutput represents a single catalog entry.
type EntryOutput struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	Kind         string `json:"kind"`
	Extension    string `json:"extension,omitempty"`
	Parent       string `json:"parent,omitempty"`
	LastModified string `json:"last_modified"`
	SizeBytes    int64  `json:"size_bytes"`
}

// EnsureIndexInput is the input schema for the ensure_index tool.
type EnsureIndexInput struct {
	Roots []string `json:"roots" jsonschema:"absolute paths of the filesystem roots to index"`
}

// EnsureIndexOutput is the output schema for the ensure_index tool.
type EnsureIndexOutput struct {
	Indexed []string `json:"indexed"`
}

// FileActionInput is the input schema for the file_action tool.
type FileActionInput struct {
	Action string `json:"action" jsonschema:"the action to perform: open or list"`
	Kind   string `json:"kind" jsonschema:"the target kind: file or folder"`
	Target string `json:"target" jsonschema:"the spoken target text to resolve"`
}

// FileActionOutput is the output schema for the file_action tool.
type FileActionOutput struct {
	Outcome  string        `json:"outcome"`
	Matches  []EntryOutput `json:"matches,omitempty"`
	Children []string      `json:"children,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the file catalog with a fuzzy name/path query",
	}, s.handleSearch)

	if s.ports.Indexer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ensure_index",
			Description: "Index the given roots: full rebuild on first contact, incremental afterwards",
		}, s.handleEnsureIndex)
	}

	if s.ports.Actions != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "file_action",
			Description: "Resolve a spoken target and open it or list its children",
		}, s.handleFileAction)
	}
}

// handleSearch handles the search_catalog tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: entriesToOutput(results),
		Count:   len(results),
	}
	return nil, output, nil
}

// handleEnsureIndex handles the ensure_index tool invocation.
func (s *Server) handleEnsureIndex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnsureIndexInput,
) (*mcp.CallToolResult, EnsureIndexOutput, error) {
	if err := s.ports.Indexer.EnsureIndex(ctx, input.Roots); err != nil {
		return nil, EnsureIndexOutput{}, err
	}
	return nil, EnsureIndexOutput{Indexed: input.Roots}, nil
}

// handleFileAction handles the file_action tool invocation. Ambiguous
// results carry the ordered match list; the caller drives its own
// disambiguation turn with the user.
func (s *Server) handleFileAction(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FileActionInput,
) (*mcp.CallToolResult, FileActionOutput, error) {
	action, err := domain.ParseAction(input.Action)
	if err != nil {
		return nil, FileActionOutput{}, err
	}
	kind, err := domain.ParseEntryKind(input.Kind)
	if err != nil {
		return nil, FileActionOutput{}, err
	}

	result, err := s.ports.Actions.HandleFileAction(ctx, action, kind, input.Target)
	if err != nil {
		return nil, FileActionOutput{}, err
	}

	output := FileActionOutput{
		Outcome:  string(result.Outcome),
		Matches:  entriesToOutput(result.Matches),
		Children: result.Children,
	}
	return nil, output, nil
}

func entriesToOutput(entries []domain.FileSystemEntry) []EntryOutput {
	out := make([]EntryOutput, len(entries))
	for i, entry := range entries {
		out[i] = EntryOutput{
			Name:         entry.Name,
			Path:         entry.Path,
			Kind:         string(entry.Kind),
			Extension:    entry.Extension,
			Parent:       entry.ParentDirName,
			LastModified: entry.LastModified.Format(time.RFC3339),
			SizeBytes:    entry.SizeBytes,
		}
	}
	return out
}
