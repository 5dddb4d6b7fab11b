// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Vocalis. It exposes the catalog to AI assistants and voice
// pipelines as tools: indexing, ranked search, and file actions.
package mcp

import "errors"

// ErrMissingSearcher is returned when the searcher port is not provided.
var ErrMissingSearcher = errors.New("mcp: searcher is required")
