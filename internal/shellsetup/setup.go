// Package shellsetup prints the shell function users install with
// `try init`. The wrapper runs the binary's cd flow with stderr bound to
// the terminal and evals whatever the binary prints on stdout.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
}

// PrintSetup writes the `try` wrapper function for the user's shell.
// shellOverride forces a shell name; otherwise the shell is detected
// from the environment. exePath is the binary the wrapper invokes and
// basePath the tries directory baked into it.
func PrintSetup(w io.Writer, shellOverride, exePath, basePath string, cfg Config) {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}

	if shell == "fish" {
		fmt.Fprintf(w, `function try
  set -l script_path "%s"
  set -l cmd (/usr/bin/env "$script_path" cd --path "%s" $argv 2>/dev/tty | string collect)
  test $status -eq 0 && eval $cmd || echo $cmd
end
`, exePath, basePath)
		return
	}

	// Every other shell gets the POSIX form. Help and version requests
	// are routed straight through so their text is never eval'd.
	fmt.Fprintf(w, `try() {
  script_path='%s';
  case "$1" in
    -h|--help|-V|--version)
      /usr/bin/env "$script_path" "$@" 2>/dev/tty
      return;;
    cd|init|clone)
      case "$2" in
        -h|--help|-V|--version)
          /usr/bin/env "$script_path" "$@" 2>/dev/tty
          return;;
      esac;;
  esac
  cmd=$(/usr/bin/env "$script_path" cd --path "%s" "$@" 2>/dev/tty);
  [ $? -eq 0 ] && eval "$cmd" || echo "$cmd";
}
`, exePath, basePath)
}

// IsFishShell reports whether the invoking shell looks like fish, which
// changes how the emitted commands assign variables.
func IsFishShell() bool {
	return isFishFrom(os.Getenv)
}

func isFishFrom(getenv func(string) string) bool {
	return strings.Contains(getenv("SHELL"), "fish")
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(os.Getenv, parent)
}

func detectShellInternal(getenv func(string) string, parent ParentShellFunc) string {
	if shell := normalizeShellName(getenv("SHELL")); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := normalizeShellName(parent()); shell != "" {
			return shell
		}
	}

	return "bash"
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	base := path.Base(strings.ReplaceAll(value, "\\", "/"))
	return strings.TrimSpace(strings.ToLower(base))
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, quote := range []byte{'"', '\''} {
		if value[0] == quote {
			rest := value[1:]
			if idx := strings.IndexByte(rest, quote); idx >= 0 {
				return rest[:idx]
			}
			return rest
		}
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
