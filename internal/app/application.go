// Package app runs an interactive selector session: terminal setup, the
// single-threaded event loop, async directory sizing, and the cooked-mode
// sub-flows for naming and deletion.
package app

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	fspkg "github.com/kk-code-lab/try/internal/fs"
	statepkg "github.com/kk-code-lab/try/internal/state"
	"github.com/kk-code-lab/try/internal/ui/ansi"
	inputui "github.com/kk-code-lab/try/internal/ui/input"
	renderui "github.com/kk-code-lab/try/internal/ui/render"
)

// pollInterval bounds how long the loop blocks so size results and
// status updates surface promptly.
const pollInterval = 200 * time.Millisecond

// Application owns the tcell screen and the running selector session.
// All state mutation happens on the loop goroutine; background workers
// only post actions onto actionCh.
type Application struct {
	screen   tcell.Screen
	sel      *statepkg.Selector
	renderer *renderui.Renderer
	input    *inputui.Handler
	actionCh chan statepkg.Action

	sizer     fspkg.Sizer
	nextToken int
	tokens    map[string]int // path -> active sizing token
}

// RunSelector runs the interactive session over basePath. On a
// non-interactive terminal it warns and returns a nil selection.
func RunSelector(basePath, initialQuery string) (*statepkg.Selection, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		ansi.Warn(os.Stderr, "try needs an interactive terminal; nothing selected")
		return nil, nil
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	actionCh := make(chan statepkg.Action, 16)
	app := &Application{
		screen:   screen,
		sel:      statepkg.NewSelector(basePath, initialQuery, w, h, fspkg.List, time.Now),
		renderer: renderui.NewRenderer(screen),
		input:    inputui.NewHandler(actionCh),
		actionCh: actionCh,
		sizer:    fspkg.NewAsyncSizer(),
		tokens:   make(map[string]int),
	}
	return app.run()
}

func (app *Application) run() (*statepkg.Selection, error) {
	defer app.screen.Fini()

	eventCh := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventCh <- ev
		}
	}()

	for !app.sel.Done() {
		if app.sel.Dirty() {
			reloaded, err := app.sel.Refresh()
			if err != nil {
				return nil, err
			}
			if reloaded {
				app.requestSizes()
			}
			app.renderer.Render(app.sel.Frame())
		}

		select {
		case ev := <-eventCh:
			app.input.ProcessEvent(ev)
		case action := <-app.actionCh:
			app.reduce(action)
		case <-time.After(pollInterval):
		}
		app.drainActions()

		if err := app.runSubFlows(); err != nil {
			return nil, err
		}
	}

	return app.sel.Result, nil
}

func (app *Application) reduce(action statepkg.Action) {
	debugf("action %T", action)
	app.sel.Reduce(action)
}

func (app *Application) drainActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.reduce(action)
		default:
			return
		}
	}
}

// requestSizes restarts sizing for every entry the last rescan left
// unsized. Results come back as actions so the loop stays the single
// writer of selector state.
func (app *Application) requestSizes() {
	for path, token := range app.tokens {
		app.sizer.Cancel(token)
		delete(app.tokens, path)
	}

	for _, e := range app.sel.Ranked {
		if e.SizeKnown {
			continue
		}
		app.nextToken++
		app.tokens[e.Path] = app.nextToken
		app.sizer.Start(fspkg.SizeRequest{
			Token: app.nextToken,
			Path:  e.Path,
			Callback: func(res fspkg.SizeResult) {
				app.dispatch(statepkg.EntrySizedAction{Path: res.Path, Bytes: res.Stats.Bytes})
			},
		})
	}
}

// dispatch posts an action without ever blocking a worker goroutine.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case app.actionCh <- action:
	default:
		go func() { app.actionCh <- action }()
	}
}
