package fs

import (
	"os"
	"path/filepath"
)

// Stats holds the recursive footprint of a directory tree.
type Stats struct {
	Files int64
	Bytes int64
}

// TreeStats walks path without following symlinks and totals regular file
// count and byte size. I/O errors along the way are skipped so a partially
// unreadable tree still reports what it can.
func TreeStats(path string) Stats {
	var st Stats
	walk(path, &st)
	return st
}

func walk(path string, st *Stats) {
	info, err := os.Lstat(path)
	if err != nil {
		return
	}
	if info.Mode().IsRegular() {
		st.Files++
		st.Bytes += info.Size()
		return
	}
	if !info.IsDir() {
		return
	}
	dirents, err := os.ReadDir(path)
	if err != nil {
		return
	}
	for _, de := range dirents {
		walk(filepath.Join(path, de.Name()), st)
	}
}
