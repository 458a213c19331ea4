package fs

import "time"

// Entry represents one candidate directory under the tries root.
type Entry struct {
	Name     string // base name, NFC-normalized for matching
	Path     string // absolute path
	Created  time.Time
	Modified time.Time
	Score    float64

	// Size is the recursive byte size, filled in asynchronously by Sizer.
	Size      int64
	SizeKnown bool
}
