package types

import (
	"path"
	"strings"
)

// FileEntry maps a file on disk to its path inside an output archive.
// Entries are compared by Destination only when applying override rules.
type FileEntry struct {
	// Source is the absolute path of the file on disk
	Source string

	// Destination is the slash-separated path inside the archive
	Destination string
}

// NewFileEntry creates an entry with a normalized destination
func NewFileEntry(source, destination string) FileEntry {
	return FileEntry{
		Source:      source,
		Destination: NormalizeDestination(destination),
	}
}

// NormalizeDestination converts a destination to the archive form:
// forward slashes, cleaned, no leading "./" or "/".
func NormalizeDestination(dest string) string {
	dest = strings.ReplaceAll(dest, "\\", "/")
	dest = path.Clean(dest)
	dest = strings.TrimPrefix(dest, "/")
	if dest == "." {
		return ""
	}
	return dest
}

// EscapesRoot reports whether a normalized destination climbs above the
// archive root
func EscapesRoot(dest string) bool {
	return dest == ".." || strings.HasPrefix(dest, "../")
}
