// Package gituri recognizes git clone targets and derives the directory
// names they should be cloned into.
package gituri

import (
	"strings"
	"time"

	"github.com/kk-code-lab/try/internal/textutil"
)

// URI is a parsed clone target.
type URI struct {
	Host string
	User string
	Repo string
}

// Parse extracts host/user/repo from the common clone forms:
//
//	https://host/user/repo(.git)
//	http://host/user/repo(.git)
//	git@host:user/repo(.git)
func Parse(input string) (URI, bool) {
	uri := strings.TrimSpace(input)
	uri = strings.TrimSuffix(uri, ".git")

	if rest, found := stripScheme(uri); found {
		parts := strings.Split(rest, "/")
		if len(parts) < 3 {
			return URI{}, false
		}
		return URI{Host: parts[0], User: parts[1], Repo: parts[2]}, true
	}

	if rest, found := strings.CutPrefix(uri, "git@"); found {
		host, path, found := strings.Cut(rest, ":")
		if !found {
			return URI{}, false
		}
		user, repo, found := strings.Cut(path, "/")
		if !found {
			return URI{}, false
		}
		if idx := strings.IndexByte(repo, '/'); idx >= 0 {
			repo = repo[:idx]
		}
		return URI{Host: host, User: user, Repo: repo}, true
	}

	return URI{}, false
}

func stripScheme(uri string) (string, bool) {
	if rest, found := strings.CutPrefix(uri, "https://"); found {
		return rest, true
	}
	return strings.CutPrefix(uri, "http://")
}

// IsGitURI is the permissive check that decides whether a cd query should
// be treated as a clone target instead of a fuzzy query.
func IsGitURI(arg string) bool {
	a := strings.TrimSpace(arg)
	return strings.HasPrefix(a, "http://") ||
		strings.HasPrefix(a, "https://") ||
		strings.HasPrefix(a, "git@") ||
		strings.Contains(a, "github.com") ||
		strings.Contains(a, "gitlab.com") ||
		strings.HasSuffix(a, ".git")
}

// CloneDirName picks the directory name for a clone. A non-empty custom
// name wins as-is; otherwise the name is YYYY-MM-DD-user-repo derived
// from the parsed URI. ok is false when the URI cannot be parsed and no
// custom name was given.
func CloneDirName(gitURI, customName string, now time.Time) (string, bool) {
	if customName != "" {
		return customName, true
	}
	parsed, ok := Parse(gitURI)
	if !ok {
		return "", false
	}
	return textutil.DatePrefix(now) + "-" + parsed.User + "-" + parsed.Repo, true
}
