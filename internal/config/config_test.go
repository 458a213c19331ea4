package config

import (
	"path/filepath"
	"testing"
)

func TestBasePathPrecedence(t *testing.T) {
	home := func() (string, error) { return "/home/u", nil }

	tests := []struct {
		name     string
		flagPath string
		env      map[string]string
		want     string
	}{
		{"flag wins over env", "/flag/dir", map[string]string{"TRY_PATH": "/env/dir"}, "/flag/dir"},
		{"env wins over default", "", map[string]string{"TRY_PATH": "/env/dir"}, "/env/dir"},
		{"default when unset", "", nil, filepath.Join("/home/u", "src", "tries")},
		{"flag tilde expands", "~/work/tries", nil, filepath.Join("/home/u", "work", "tries")},
		{"env tilde expands", "", map[string]string{"TRY_PATH": "~/t"}, filepath.Join("/home/u", "t")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := basePathFrom(tt.flagPath, getenv, home); got != tt.want {
				t.Fatalf("basePathFrom(%q) = %q, want %q", tt.flagPath, got, tt.want)
			}
		})
	}
}

func TestExpandHomeLeavesOtherPaths(t *testing.T) {
	noHome := func() (string, error) { return "", nil }

	if got := expandHome("/tmp/x", noHome); got != "/tmp/x" {
		t.Fatalf("absolute path changed: %q", got)
	}
	if got := expandHome("~elsewhere", noHome); got != "~elsewhere" {
		t.Fatalf("non ~/ tilde path changed: %q", got)
	}
	if got := expandHome("~/x", noHome); got != "~/x" {
		t.Fatalf("unknown home should leave the path alone: %q", got)
	}
}
