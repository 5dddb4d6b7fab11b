package domain

// CatalogStats summarises the catalog contents.
type CatalogStats struct {
	// Files is the number of catalogued file entries.
	Files int64

	// Folders is the number of catalogued folder entries.
	Folders int64
}
