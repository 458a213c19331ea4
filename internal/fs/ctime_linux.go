//go:build linux

package fs

import (
	"os"
	"syscall"
	"time"
)

// creationTime approximates creation time with the inode change time,
// the closest thing plain stat exposes on Linux.
func creationTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}
	return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
}
