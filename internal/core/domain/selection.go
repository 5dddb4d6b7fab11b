package domain

// PendingSelection is an unresolved disambiguation: an ordered list of
// equally plausible matches awaiting a follow-up selection utterance.
// At most one exists at a time; a newer ambiguous query replaces it.
type PendingSelection struct {
	// ID correlates log lines for one disambiguation round.
	ID string

	// Entries is the ordered candidate list, as ranked by search.
	Entries []FileSystemEntry

	// Kind is the kind the user asked for (file or folder).
	Kind EntryKind
}

// Len returns the number of pending candidates.
func (p PendingSelection) Len() int {
	return len(p.Entries)
}

// At returns the candidate at the zero-based index, if in range.
func (p PendingSelection) At(index int) (FileSystemEntry, bool) {
	if index < 0 || index >= len(p.Entries) {
		return FileSystemEntry{}, false
	}
	return p.Entries[index], true
}
