// Package input converts tcell events into selector actions.
package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/try/internal/state"
)

// Handler translates terminal events to Actions.
type Handler struct {
	actionChan chan<- statepkg.Action
}

// NewHandler creates a new input handler.
func NewHandler(actionChan chan<- statepkg.Action) *Handler {
	return &Handler{actionChan: actionChan}
}

// ProcessEvent maps one tcell event onto zero or one action.
func (h *Handler) ProcessEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		h.processKeyEvent(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.actionChan <- statepkg.ResizeAction{Width: w, Height: ht}
	}
}

func (h *Handler) processKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.actionChan <- statepkg.CancelAction{}

	case tcell.KeyUp, tcell.KeyCtrlP, tcell.KeyPgUp:
		h.actionChan <- statepkg.MoveUpAction{}

	case tcell.KeyDown, tcell.KeyCtrlN, tcell.KeyPgDn:
		h.actionChan <- statepkg.MoveDownAction{}

	case tcell.KeyEnter:
		h.actionChan <- statepkg.ConfirmAction{}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.actionChan <- statepkg.BackspaceAction{}

	case tcell.KeyCtrlD:
		h.actionChan <- statepkg.RequestDeleteAction{}

	case tcell.KeyRune:
		// Shift reaches us as an uppercase rune; any other modifier
		// means the key is not query input.
		if ev.Modifiers()&^tcell.ModShift != 0 {
			return
		}
		h.actionChan <- statepkg.InputCharAction{Char: ev.Rune()}
	}
}
