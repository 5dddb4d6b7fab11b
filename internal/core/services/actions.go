package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driving"
	"github.com/vocalis-labs/vocalis/internal/logger"
)

// Ensure ActionService implements the interface.
var _ driving.ActionHandler = (*ActionService)(nil)

// maxListedChildren caps folder listings at a speakable size.
const maxListedChildren = 30

// ActionService executes structured open/list actions against the
// catalog.
type ActionService struct {
	searcher driving.Searcher
	opener   driven.EntryOpener
	limit    int
}

// NewActionService creates an action handler. limit <= 0 selects the
// default search limit.
func NewActionService(searcher driving.Searcher, opener driven.EntryOpener, limit int) *ActionService {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &ActionService{
		searcher: searcher,
		opener:   opener,
		limit:    limit,
	}
}

// HandleFileAction searches for target, filters to kind, and acts on
// the result per the action.
func (s *ActionService) HandleFileAction(ctx context.Context, action domain.Action, kind domain.EntryKind, target string) (domain.ActionResult, error) {
	logger.Section("File Action")
	logger.Debug("Action: %s, kind: %s, target: %q", action, kind, target)

	switch action {
	case domain.ActionOpen, domain.ActionList:
	default:
		return domain.ActionResult{}, fmt.Errorf("action %q: %w", action, domain.ErrUnknownAction)
	}
	if action == domain.ActionList && kind == domain.KindFile {
		return domain.ActionResult{}, fmt.Errorf("cannot list a file: %w", domain.ErrInvalidInput)
	}

	cleaned := cleanTarget(target)
	if cleaned == "" {
		return domain.ActionResult{Outcome: domain.OutcomeNotFound}, nil
	}

	matches, err := s.searcher.Search(ctx, cleaned, s.limit)
	if err != nil {
		return domain.ActionResult{}, fmt.Errorf("searching for %q: %w", cleaned, err)
	}

	filtered := matches[:0:0]
	for _, match := range matches {
		if match.Kind == kind {
			filtered = append(filtered, match)
		}
	}
	logger.Debug("%d matches, %d of kind %s", len(matches), len(filtered), kind)

	switch {
	case len(filtered) == 0:
		return domain.ActionResult{Outcome: domain.OutcomeNotFound}, nil

	case action == domain.ActionList:
		return s.listChildren(filtered[0])

	case len(filtered) == 1:
		s.OpenEntry(filtered[0])
		return domain.ActionResult{
			Outcome: domain.OutcomeOpened,
			Matches: filtered,
		}, nil

	default:
		return domain.ActionResult{
			Outcome: domain.OutcomeAmbiguous,
			Matches: filtered,
		}, nil
	}
}

// OpenEntry opens an entry with the OS default handler. A failed open
// is logged and reported as false, never escalated.
func (s *ActionService) OpenEntry(entry domain.FileSystemEntry) bool {
	logger.Info("Opening %s %s", entry.Kind, entry.Path)
	if err := s.opener.Open(entry); err != nil {
		logger.Warn("Opening %s: %v", entry.Path, err)
		return false
	}
	return true
}

// listChildren enumerates the immediate children of a folder, capped.
func (s *ActionService) listChildren(folder domain.FileSystemEntry) (domain.ActionResult, error) {
	dirEntries, err := os.ReadDir(folder.Path)
	if err != nil {
		logger.Warn("Listing %s: %v", folder.Path, err)
		return domain.ActionResult{Outcome: domain.OutcomeNotFound}, nil
	}

	children := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if len(children) == maxListedChildren {
			break
		}
		children = append(children, dirEntry.Name())
	}

	logger.Info("Listed %d children of %s", len(children), folder.Path)
	return domain.ActionResult{
		Outcome:  domain.OutcomeListed,
		Matches:  []domain.FileSystemEntry{folder},
		Children: children,
	}, nil
}

// cleanTarget strips quoting and trailing punctuation that speech
// transcription tends to add, and collapses whitespace.
func cleanTarget(target string) string {
	target = strings.TrimSpace(target)
	target = strings.Trim(target, `"'`)
	target = strings.TrimRight(target, ".,!?")
	return strings.Join(strings.Fields(target), " ")
}
