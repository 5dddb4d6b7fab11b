// Package driven defines the interfaces the core requires from the
// outside world (storage, filesystem, OS integration, configuration).
//
// Adapters under internal/adapters/driven implement these interfaces.
// The core services depend only on the contracts defined here.
package driven
