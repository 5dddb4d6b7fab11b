package driving

import (
	"context"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
)

// ActionHandler executes structured file actions on behalf of the
// collaborator: open the best match, or list a folder's children.
type ActionHandler interface {
	// HandleFileAction searches for target, filters to kind, and acts.
	// No match yields OutcomeNotFound; a single match with ActionOpen is
	// opened immediately; several matches yield OutcomeAmbiguous with the
	// ordered list, which the caller is expected to hand to a
	// SelectionSession. An unknown action fails with ErrUnknownAction.
	HandleFileAction(ctx context.Context, action domain.Action, kind domain.EntryKind, target string) (domain.ActionResult, error)

	// OpenEntry opens an entry with the OS and reports success. Failures
	// are logged, not escalated.
	OpenEntry(entry domain.FileSystemEntry) bool
}
