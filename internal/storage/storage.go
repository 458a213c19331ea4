// Package storage decides when a query can skip the interactive selector
// and create its directory directly.
package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kk-code-lab/try/internal/fs"
	"github.com/kk-code-lab/try/internal/textutil"
)

// FastCreateTarget returns the path a new try for query should be created
// at, or ok=false when an existing directory already answers the query
// exactly. The comparison strips any leading date prefix from existing
// names and normalizes the query the same way a created name would be.
func FastCreateTarget(root, query string, now time.Time) (target string, ok bool) {
	normalized := textutil.NormalizeForMatch(query)
	if normalized == "" {
		return "", false
	}

	// An unreadable root means no match can exist yet.
	if entries, err := os.ReadDir(root); err == nil {
		for _, de := range entries {
			if !de.IsDir() || de.Name() == fs.TrashDirName {
				continue
			}
			name := de.Name()
			if _, rest, found := textutil.SplitDatePrefixed(name); found {
				name = rest
			}
			if name == normalized {
				return "", false
			}
		}
	}

	return filepath.Join(root, textutil.StampName(now, query)), true
}
