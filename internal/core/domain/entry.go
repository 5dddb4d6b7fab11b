package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// EntryKind distinguishes files from folders in the catalog.
type EntryKind string

const (
	// KindFile is a regular file entry.
	KindFile EntryKind = "file"

	// KindFolder is a directory entry.
	KindFolder EntryKind = "folder"
)

// ParseEntryKind converts a string to an EntryKind.
// Returns ErrInvalidInput for anything other than "file" or "folder".
func ParseEntryKind(s string) (EntryKind, error) {
	switch EntryKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindFile:
		return KindFile, nil
	case KindFolder:
		return KindFolder, nil
	default:
		return "", ErrInvalidInput
	}
}

// FileSystemEntry is a single catalogued file or folder.
type FileSystemEntry struct {
	// ID is the store-assigned stable identifier.
	ID int64

	// Name is the base name of the entry.
	Name string

	// Path is the absolute path. It uniquely identifies the entry.
	Path string

	// Kind marks the entry as a file or a folder.
	Kind EntryKind

	// Extension is the lowercase extension including the leading dot.
	// Always empty for folders.
	Extension string

	// ParentDirName is the base name of the containing directory.
	ParentDirName string

	// LastModified is the filesystem modification time captured at
	// index time.
	LastModified time.Time

	// SizeBytes is the size captured at index time.
	SizeBytes int64
}

// IsFolder reports whether the entry is a directory.
func (e FileSystemEntry) IsFolder() bool {
	return e.Kind == KindFolder
}

// ExtensionOf returns the lowercase extension of a file name,
// including the leading dot, or "" if the name has none.
func ExtensionOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
