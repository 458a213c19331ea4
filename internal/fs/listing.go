package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// TrashDirName is reserved for soft-deleted tries and never listed.
const TrashDirName = ".try_trash"

// List returns the child directories of root as entries. Unreadable
// children are skipped rather than failing the scan; the reserved trash
// directory is excluded. Creation time is best-effort and platform
// dependent (zero when unavailable).
func List(root string) ([]Entry, error) {
	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		name := de.Name()
		if name == TrashDirName {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:     norm.NFC.String(name),
			Path:     filepath.Join(root, name),
			Created:  creationTime(info),
			Modified: info.ModTime(),
		})
	}
	return entries, nil
}
