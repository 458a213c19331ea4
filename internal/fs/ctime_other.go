//go:build !linux && !darwin

package fs

import (
	"os"
	"time"
)

func creationTime(_ os.FileInfo) time.Time {
	return time.Time{}
}
