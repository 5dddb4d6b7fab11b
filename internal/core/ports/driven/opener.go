package driven

import "github.com/vocalis-labs/vocalis/internal/core/domain"

// EntryOpener opens catalog entries with the operating system: files via
// the default association, folders in the platform file browser.
type EntryOpener interface {
	// Open launches the OS handler for the entry. The returned error
	// carries the reason; callers typically log it and report false
	// rather than escalating.
	Open(entry domain.FileSystemEntry) error
}
