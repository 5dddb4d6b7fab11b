package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownAction indicates a file action outside the contract.
	// This is a programmer error, not a user-facing "no match" result.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNoSelection indicates a selection utterance arrived with no
	// pending disambiguation to resolve.
	ErrNoSelection = errors.New("no pending selection")

	// ErrSelectionOutOfRange indicates the chosen option number does not
	// exist in the pending list. The selection stays active.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)
