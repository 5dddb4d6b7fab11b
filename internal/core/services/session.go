package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/logger"
)

// SessionOutcome classifies what a selection utterance produced.
type SessionOutcome string

const (
	// SessionNotHandled means the utterance is not a session phrase;
	// the caller should route it through normal command handling.
	SessionNotHandled SessionOutcome = "not_handled"

	// SessionCancelled means the pending selection was cleared.
	SessionCancelled SessionOutcome = "cancelled"

	// SessionShowOptions means the pending list should be re-emitted.
	SessionShowOptions SessionOutcome = "show_options"

	// SessionOpened means a candidate was selected and opened.
	SessionOpened SessionOutcome = "opened"

	// SessionOpenFailed means a candidate was selected but the OS
	// open call failed. The selection is still cleared.
	SessionOpenFailed SessionOutcome = "open_failed"

	// SessionOutOfRange means the selected index does not exist;
	// the pending selection is kept.
	SessionOutOfRange SessionOutcome = "out_of_range"
)

// SessionResponse is the result of handing an utterance to the session.
type SessionResponse struct {
	Outcome SessionOutcome

	// Entry is set when a candidate was selected (Opened / OpenFailed).
	Entry domain.FileSystemEntry

	// Options holds the pending candidates for ShowOptions and OutOfRange.
	Options []domain.FileSystemEntry
}

// cancelPhrases clear the pending selection from any state.
var cancelPhrases = []string{
	"cancel",
	"never mind",
	"nevermind",
	"forget it",
	"stop that",
	"don't open",
}

// showOptionPhrases re-emit the pending list unchanged.
var showOptionPhrases = []string{
	"show options",
	"show options again",
	"show me the options",
	"repeat",
	"repeat the options",
	"what are the options",
	"say that again",
}

// ordinalWords map spoken ordinals to one-based positions.
var ordinalWords = map[string]int{
	"first":  1,
	"second": 2,
	"third":  3,
	"fourth": 4,
	"fifth":  5,
}

// numberWords map spoken cardinals to digits for normalization.
var numberWords = map[string]string{
	"one":   "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
	"nine":  "9",
	"ten":   "10",
}

var digitPattern = regexp.MustCompile(`\d+`)

// SelectionSession is the disambiguation state machine. It is Idle when
// no selection is pending and AwaitingSelection otherwise. A single
// instance serves one serial utterance stream; it is not safe for
// concurrent use.
type SelectionSession struct {
	opener  driven.EntryOpener
	pending *domain.PendingSelection
}

// NewSelectionSession creates an idle session.
func NewSelectionSession(opener driven.EntryOpener) *SelectionSession {
	return &SelectionSession{opener: opener}
}

// SetPending stores a new pending selection, silently replacing any
// previous one.
func (s *SelectionSession) SetPending(entries []domain.FileSystemEntry, kind domain.EntryKind) {
	id := uuid.NewString()
	if s.pending != nil {
		logger.Debug("Selection %s replaced by %s", s.pending.ID, id)
	}
	s.pending = &domain.PendingSelection{
		ID:      id,
		Entries: entries,
		Kind:    kind,
	}
	logger.Info("Selection %s: awaiting choice among %d candidates", id, len(entries))
}

// Clear empties the pending selection, returning the session to idle.
func (s *SelectionSession) Clear() {
	if s.pending != nil {
		logger.Debug("Selection %s cleared", s.pending.ID)
	}
	s.pending = nil
}

// HasPending reports whether the session is awaiting a selection.
func (s *SelectionSession) HasPending() bool {
	return s.pending != nil
}

// Pending returns the current pending selection, if any.
func (s *SelectionSession) Pending() (domain.PendingSelection, bool) {
	if s.pending == nil {
		return domain.PendingSelection{}, false
	}
	return *s.pending, true
}

// HandleUtterance resolves an utterance against the pending selection.
// When idle, or when the utterance matches no session phrase, it
// returns SessionNotHandled so the caller can route the utterance
// through normal command handling.
func (s *SelectionSession) HandleUtterance(utterance string) SessionResponse {
	if s.pending == nil {
		return SessionResponse{Outcome: SessionNotHandled}
	}

	normalized := strings.ToLower(strings.TrimSpace(utterance))

	if matchesPhrase(normalized, cancelPhrases) {
		logger.Info("Selection %s cancelled", s.pending.ID)
		s.pending = nil
		return SessionResponse{Outcome: SessionCancelled}
	}

	if matchesPhrase(normalized, showOptionPhrases) {
		return SessionResponse{
			Outcome: SessionShowOptions,
			Options: s.pending.Entries,
		}
	}

	index, ok := extractSelectionIndex(normalized)
	if !ok {
		return SessionResponse{Outcome: SessionNotHandled}
	}

	entry, err := s.Select(index)
	switch {
	case errors.Is(err, domain.ErrSelectionOutOfRange):
		return SessionResponse{
			Outcome: SessionOutOfRange,
			Options: s.pending.Entries,
		}
	case err != nil:
		return SessionResponse{Outcome: SessionOpenFailed, Entry: entry}
	default:
		return SessionResponse{Outcome: SessionOpened, Entry: entry}
	}
}

// Select resolves a zero-based index against the pending selection and
// opens that entry. An in-range choice consumes the selection even when
// the open fails; out of range keeps it active.
func (s *SelectionSession) Select(index int) (domain.FileSystemEntry, error) {
	if s.pending == nil {
		return domain.FileSystemEntry{}, domain.ErrNoSelection
	}

	entry, inRange := s.pending.At(index)
	if !inRange {
		logger.Warn("Selection %s: choice %d out of range (1-%d)",
			s.pending.ID, index+1, s.pending.Len())
		return domain.FileSystemEntry{}, fmt.Errorf("choice %d of %d: %w",
			index+1, s.pending.Len(), domain.ErrSelectionOutOfRange)
	}

	logger.Info("Selection %s: choice %d -> %s", s.pending.ID, index+1, entry.Path)
	s.pending = nil

	if err := s.opener.Open(entry); err != nil {
		logger.Warn("Opening %s: %v", entry.Path, err)
		return entry, fmt.Errorf("opening selection: %w", err)
	}
	return entry, nil
}

// matchesPhrase reports whether the utterance contains one of the
// phrases as a whole word sequence. Boundary matching keeps words like
// "stopwatch" or "cancellation" from triggering a session phrase.
func matchesPhrase(utterance string, phrases []string) bool {
	padded := " " + utterance + " "
	for _, phrase := range phrases {
		if strings.Contains(padded, " "+phrase+" ") {
			return true
		}
	}
	return false
}

// extractSelectionIndex finds an ordinal word or digit in the utterance
// and maps it to a zero-based index. Ordinals take precedence so that
// "the third one" selects position three, not one; spoken cardinals
// ("two") are normalized to digits before the digit scan.
func extractSelectionIndex(utterance string) (int, bool) {
	for _, token := range strings.Fields(utterance) {
		if position, ok := ordinalWords[token]; ok {
			return position - 1, true
		}
	}

	normalized := normalizeSpokenNumbers(utterance)
	if match := digitPattern.FindString(normalized); match != "" {
		n, err := strconv.Atoi(match)
		if err == nil && n > 0 {
			return n - 1, true
		}
	}

	return 0, false
}

// normalizeSpokenNumbers replaces standalone cardinal words with digits.
func normalizeSpokenNumbers(utterance string) string {
	tokens := strings.Fields(utterance)
	for i, token := range tokens {
		if digit, ok := numberWords[token]; ok {
			tokens[i] = digit
		}
	}
	return strings.Join(tokens, " ")
}
