// Package domain defines the core business entities for Vocalis.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileSystemEntry: an indexed file or folder
//   - IndexPolicy: directory exclusion and extension filtering rules
//   - PendingSelection: an unresolved disambiguation between matches
//   - ActionResult: the outcome of a file action request
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
