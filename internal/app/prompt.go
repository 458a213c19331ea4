package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	fspkg "github.com/kk-code-lab/try/internal/fs"
	statepkg "github.com/kk-code-lab/try/internal/state"
	"github.com/kk-code-lab/try/internal/textutil"
	"github.com/kk-code-lab/try/internal/ui/ansi"
)

// runSubFlows executes any prompt the last reduction requested. Prompts
// run in cooked mode with the tcell screen suspended and report back
// through completion actions.
func (app *Application) runSubFlows() error {
	if app.sel.PendingRename {
		return app.promptNewName()
	}
	if app.sel.PendingDelete != nil {
		return app.confirmDelete(*app.sel.PendingDelete)
	}
	return nil
}

// suspended runs body with the terminal restored to its normal state,
// then resumes and repaints the screen.
func (app *Application) suspended(body func() error) (err error) {
	if err := app.screen.Suspend(); err != nil {
		return err
	}
	defer func() {
		if resumeErr := app.screen.Resume(); resumeErr != nil && err == nil {
			err = resumeErr
		}
		app.screen.Sync()
	}()
	return body()
}

func (app *Application) promptNewName() error {
	var name string
	err := app.suspended(func() error {
		f := os.Stderr
		ansi.Header(f, "Name for the new try")
		ansi.Styled(f, ansi.Enabled(f), ansi.Dim, textutil.DatePrefix(time.Now())+"-")
		fmt.Fprint(f, " > ")

		line, err := readLine(os.Stdin)
		if err != nil {
			return err
		}
		name = line
		return nil
	})
	if err != nil {
		return err
	}

	app.reduce(statepkg.NameEnteredAction{Name: name})
	return nil
}

func (app *Application) confirmDelete(entry fspkg.Entry) error {
	stats := fspkg.TreeStats(entry.Path)

	confirmed := false
	err := app.suspended(func() error {
		f := os.Stderr
		ansi.Header(f, "Delete try")
		fmt.Fprintf(f, "  %s\n", entry.Name)
		fmt.Fprintf(f, "  %s\n", entry.Path)
		fmt.Fprintf(f, "  %d files, %s\n", stats.Files, textutil.HumanSize(stats.Bytes))
		ansi.Styled(f, ansi.Enabled(f), ansi.Bold+ansi.Red, "Type YES to delete: ")

		line, err := readLine(os.Stdin)
		if err != nil {
			return err
		}
		confirmed = line == "YES"
		return nil
	})
	if err != nil {
		return err
	}

	deleted := false
	if confirmed {
		deleted = os.RemoveAll(entry.Path) == nil
	}
	app.reduce(statepkg.DeleteResolvedAction{Deleted: deleted, Name: entry.Name})
	return nil
}

// readLine reads one line, treating EOF as an empty answer.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
