// Package cli turns resolved selections into shell-evaluable command
// lines and drives the cd and clone flows around the selector.
package cli

import "strings"

// ShellEscape wraps s in single quotes for POSIX shells, escaping any
// embedded single quote.
func ShellEscape(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// DirAssign builds the $dir assignment in the invoking shell's dialect.
func DirAssign(dir string, fish bool) string {
	escaped := ShellEscape(dir)
	if fish {
		return "set -l dir " + escaped
	}
	return "dir=" + escaped
}

// JoinShell chains commands into one evaluable line.
func JoinShell(parts []string) string {
	return strings.Join(parts, " && ")
}

// OpenCommands produces the line that enters an existing directory. The
// touch bumps its mtime so recency ranking sees the visit.
func OpenCommands(dir string, fish bool) string {
	return JoinShell([]string{DirAssign(dir, fish), `touch "$dir"`, `cd "$dir"`})
}

// CreateCommands produces the line that creates and enters a directory.
func CreateCommands(dir string, fish bool) string {
	return JoinShell([]string{DirAssign(dir, fish), `mkdir -p "$dir"`, `touch "$dir"`, `cd "$dir"`})
}

// CloneCommands produces the line that clones gitURI into dir and enters
// it.
func CloneCommands(dir, gitURI string, fish bool) string {
	return JoinShell([]string{
		DirAssign(dir, fish),
		`mkdir -p "$dir"`,
		"git clone " + ShellEscape(gitURI) + ` "$dir"`,
		`touch "$dir"`,
		`cd "$dir"`,
	})
}
