// Package opener launches catalog entries with the operating system:
// files via the default association, folders in the platform file
// browser.
package opener

import (
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
)

// Ensure Opener implements the port interface.
var _ driven.EntryOpener = (*Opener)(nil)

// Opener opens entries with the OS default handlers.
type Opener struct{}

// NewOpener creates an OS opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open launches the platform handler for the entry. The catalog may be
// stale, so a vanished target is reported as an error rather than handed
// to the OS.
func (o *Opener) Open(entry domain.FileSystemEntry) error {
	if _, err := os.Stat(entry.Path); err != nil {
		return fmt.Errorf("target missing: %w", err)
	}

	if err := browser.OpenFile(entry.Path); err != nil {
		return fmt.Errorf("opening %s: %w", entry.Path, err)
	}
	return nil
}
