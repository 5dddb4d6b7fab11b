// Package driving defines the interfaces through which the outside world
// drives the core: indexing, search, and file actions.
//
// The upstream voice pipeline (or any collaborator such as the CLI and
// the MCP server) calls these; implementations live in
// internal/core/services.
package driving
