package domain

import "strings"

// Action is a structured file action requested by the collaborator.
type Action string

const (
	// ActionOpen opens the best match with the OS default handler.
	ActionOpen Action = "open"

	// ActionList lists the immediate children of the best folder match.
	ActionList Action = "list"
)

// ParseAction converts a string to an Action. An unknown action is a
// contract violation and returns ErrUnknownAction so callers fail loudly
// instead of silently reporting "not found".
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionOpen:
		return ActionOpen, nil
	case ActionList:
		return ActionList, nil
	default:
		return "", ErrUnknownAction
	}
}

// ActionOutcome classifies what a file action produced.
type ActionOutcome string

const (
	// OutcomeNotFound means no catalog entry of the requested kind matched.
	OutcomeNotFound ActionOutcome = "not_found"

	// OutcomeOpened means a single match was opened immediately.
	OutcomeOpened ActionOutcome = "opened"

	// OutcomeAmbiguous means several matches were found; Matches holds
	// the ordered list for a disambiguation session.
	OutcomeAmbiguous ActionOutcome = "ambiguous"

	// OutcomeListed means a folder's children were enumerated.
	OutcomeListed ActionOutcome = "listed"
)

// ActionResult is the outcome of HandleFileAction.
type ActionResult struct {
	// Outcome classifies the result.
	Outcome ActionOutcome

	// Matches holds the ranked candidates when Outcome is Ambiguous,
	// or the single entry acted on when Outcome is Opened or Listed.
	Matches []FileSystemEntry

	// Children holds immediate child names when Outcome is Listed.
	Children []string
}
