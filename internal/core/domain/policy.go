package domain

// IndexPolicy controls which directories are descended into and which
// files are catalogued. An entry exists in the catalog only if it passed
// the policy active at index time.
type IndexPolicy struct {
	// ExcludedDirs are directory names that are neither recorded nor
	// descended into (dependency caches, VCS metadata, OS folders).
	ExcludedDirs map[string]bool

	// ExcludedExtensions are always rejected, regardless of whitelist.
	ExcludedExtensions map[string]bool

	// IncludedExtensions, when non-empty, additionally restricts files
	// to these extensions. Folders are never extension-filtered.
	IncludedExtensions map[string]bool
}

// DefaultIndexPolicy returns the built-in exclusion and extension rules.
func DefaultIndexPolicy() IndexPolicy {
	return IndexPolicy{
		ExcludedDirs: toSet([]string{
			"node_modules",
			".venv",
			"venv",
			".cache",
			".vscode",
			".next",
			".git",
			"__pycache__",
			"$RECYCLE.BIN",
			"System Volume Information",
			"AppData",
			"Support Files",
			"Program Files",
			"Program Files (x86)",
			"Windows",
		}),
		ExcludedExtensions: toSet([]string{
			".dll", ".exe", ".sys", ".tmp",
			".log", ".cache", ".bin", ".dat",
			".iso",
		}),
		IncludedExtensions: toSet([]string{
			".txt", ".md", ".py", ".json",
			".docx", ".pdf", ".xlsx", ".csv",
			".pptx", ".html", ".js", ".ts",
		}),
	}
}

// PolicyFromLists builds a policy from plain string slices, falling back
// to the defaults for any empty list. Used by the config layer.
func PolicyFromLists(excludedDirs, excludedExts, includedExts []string) IndexPolicy {
	p := DefaultIndexPolicy()
	if len(excludedDirs) > 0 {
		p.ExcludedDirs = toSet(excludedDirs)
	}
	if len(excludedExts) > 0 {
		p.ExcludedExtensions = toSet(excludedExts)
	}
	if len(includedExts) > 0 {
		p.IncludedExtensions = toSet(includedExts)
	}
	return p
}

// ShouldDescend reports whether a directory with the given base name
// may be recorded and walked into.
func (p IndexPolicy) ShouldDescend(dirName string) bool {
	return !p.ExcludedDirs[dirName]
}

// ShouldIndexFile reports whether a file with the given base name
// passes the extension policy.
func (p IndexPolicy) ShouldIndexFile(fileName string) bool {
	ext := ExtensionOf(fileName)
	if p.ExcludedExtensions[ext] {
		return false
	}
	if len(p.IncludedExtensions) > 0 {
		return p.IncludedExtensions[ext]
	}
	return true
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
