package shellsetup

import (
	"os"
	"strconv"
	"strings"
)

// DetectParentShellName reads the parent process name from procfs. It
// returns "" on platforms without /proc; SHELL handles those.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	comm, err := os.ReadFile("/proc/" + strconv.Itoa(ppid) + "/comm")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(comm))
}
