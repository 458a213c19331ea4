package app

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugOnce sync.Once
	debugFile *os.File
)

// debugf appends a trace line to the file named by TRY_DEBUG. With the
// variable unset it is a no-op, so the loop can trace unconditionally.
func debugf(format string, args ...any) {
	debugOnce.Do(func() {
		path := os.Getenv("TRY_DEBUG")
		if path == "" {
			return
		}
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			debugFile = f
		}
	})
	if debugFile == nil {
		return
	}
	args = append([]any{time.Now().Format(time.RFC3339Nano)}, args...)
	fmt.Fprintf(debugFile, "%s "+format+"\n", args...)
}
