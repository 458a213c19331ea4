package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kk-code-lab/try/internal/gituri"
	"github.com/kk-code-lab/try/internal/state"
	"github.com/kk-code-lab/try/internal/storage"
	"github.com/kk-code-lab/try/internal/ui/ansi"
)

// SelectorFunc runs the interactive selector and returns its resolution,
// or nil when no selection could be made.
type SelectorFunc func(basePath, initialQuery string) (*state.Selection, error)

// Flow holds everything the cd and clone flows need. Stdout must stay
// clean for shell evaluation; all human-facing text goes to Stderr.
type Flow struct {
	BasePath string
	Fish     bool
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   *os.File
	Select   SelectorFunc
}

func (f *Flow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// BuildQuery joins cd arguments into one fuzzy query, dropping a
// redundant leading "cd" token left over from the shell wrapper.
func BuildQuery(args []string) string {
	if len(args) > 0 && args[0] == "cd" {
		args = args[1:]
	}
	return strings.Join(args, " ")
}

// RunCd resolves a query to a shell command line. Git URIs short-circuit
// to a clone pipeline, queries with no exact existing match fast-create,
// and everything else goes through the interactive selector.
func (f *Flow) RunCd(query string) error {
	trimmed := strings.TrimSpace(query)

	if trimmed != "" && gituri.IsGitURI(trimmed) {
		name, ok := gituri.CloneDirName(trimmed, "", f.now())
		if !ok {
			ansi.Warn(f.Stderr, "Unable to parse git URI: "+trimmed)
			return nil
		}
		fmt.Fprintln(f.Stdout, CloneCommands(filepath.Join(f.BasePath, name), trimmed, f.Fish))
		return nil
	}

	if trimmed != "" {
		if target, ok := storage.FastCreateTarget(f.BasePath, trimmed, f.now()); ok {
			fmt.Fprintln(f.Stdout, CreateCommands(target, f.Fish))
			return nil
		}
	}

	sel, err := f.Select(f.BasePath, query)
	if err != nil {
		return err
	}
	if sel == nil {
		return nil
	}
	switch sel.Kind {
	case state.SelectOpen:
		fmt.Fprintln(f.Stdout, OpenCommands(sel.Path, f.Fish))
	case state.SelectCreate:
		fmt.Fprintln(f.Stdout, CreateCommands(sel.Path, f.Fish))
	case state.SelectCancel:
		// Cancelled sessions print nothing; the wrapper evals an empty
		// line and the shell stays where it was.
	}
	return nil
}

// RunClone resolves an explicit clone command. name overrides the
// derived directory name when non-empty.
func (f *Flow) RunClone(gitURI, name string) error {
	dirName, ok := gituri.CloneDirName(gitURI, name, f.now())
	if !ok {
		return fmt.Errorf("unable to parse git URI: %s", gitURI)
	}
	fmt.Fprintln(f.Stdout, CloneCommands(filepath.Join(f.BasePath, dirName), gitURI, f.Fish))
	return nil
}
