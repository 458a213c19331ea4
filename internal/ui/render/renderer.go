// Package render draws the selector frame onto a tcell screen. It only
// consumes state.Frame snapshots; all session logic lives in state.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	statepkg "github.com/kk-code-lab/try/internal/state"
	"github.com/kk-code-lab/try/internal/textutil"
)

const headerText = "Try Directory Selection"
const helpText = "↑↓: Navigate  Enter: Select  Ctrl-D: Delete  ESC: Cancel"

// Renderer handles all UI rendering.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws one frame: header, separator, search line, the visible
// window of the ranked list plus the create-new row, then help and status.
func (r *Renderer) Render(f statepkg.Frame) {
	r.screen.Clear()
	w, h := f.Width, f.Height

	headerStyle := tcell.StyleDefault.Foreground(r.theme.HeaderFg).Bold(true)
	dimStyle := tcell.StyleDefault.Foreground(r.theme.DimFg)
	separator := strings.Repeat("─", maxInt(w-1, 1))

	y := 0
	r.drawTextLine(0, y, w, headerText, headerStyle)
	y++
	r.drawTextLine(0, y, w, separator, dimStyle)
	y++
	r.drawTextLine(0, y, w, "Search: "+f.Input, tcell.StyleDefault)
	y += 2

	maxVisible := statepkg.MaxVisibleRows(h)
	total := len(f.Entries) + 1
	scroll, end := statepkg.ComputeViewport(f.Cursor, f.Scroll, maxVisible, total)

	for idx := scroll; idx < end; idx++ {
		if idx == len(f.Entries) && len(f.Entries) > 0 {
			y++ // blank row before the create-new row
		}
		selected := idx == f.Cursor
		if idx < len(f.Entries) {
			r.drawEntryRow(y, w, f, idx, selected)
		} else {
			r.drawCreateRow(y, w, f.Input, selected)
		}
		y++
	}

	r.drawTextLine(0, y, w, separator, dimStyle)
	y++
	r.drawTextLine(0, y, w, helpText, dimStyle)
	y++
	if f.DeletePending {
		r.drawTextLine(0, y, w, "delete pending: confirm in prompt", dimStyle)
	} else if f.StatusMsg != "" {
		r.drawTextLine(0, y, w, f.StatusMsg, dimStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawEntryRow(y, w int, f statepkg.Frame, idx int, selected bool) {
	e := f.Entries[idx]

	prefix := "  "
	if selected {
		prefix = "→ "
	}
	x := r.drawTextLine(0, y, w, prefix, tcell.StyleDefault)

	nameStyle := tcell.StyleDefault
	if selected {
		nameStyle = nameStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}
	highlightStyle := nameStyle.Foreground(r.theme.HighlightFg).Bold(true)

	matched := HighlightIndices(e.Name, f.Input)
	mi := 0
	pos := 0
	for _, ru := range e.Name {
		if x >= w {
			break
		}
		style := nameStyle
		if mi < len(matched) && matched[mi] == pos {
			style = highlightStyle
			mi++
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += runeWidth(ru)
		pos++
	}

	// Right-aligned size and age metadata, dimmed, never wrapping.
	sizeText := "..."
	if e.SizeKnown {
		sizeText = textutil.HumanSize(e.Size)
	}
	meta := sizeText + ", " + textutil.RelativeTime(e.Modified, f.Now)
	metaW := runewidth.StringWidth(meta)
	rem := w - x
	dimStyle := tcell.StyleDefault.Foreground(r.theme.DimFg)
	switch {
	case rem <= 0:
	case metaW >= rem:
		r.drawTextLine(x+1, y, rem-1, meta, dimStyle)
	default:
		r.drawTextLine(w-metaW, y, metaW, meta, dimStyle)
	}
}

func (r *Renderer) drawCreateRow(y, w int, input string, selected bool) {
	x := 0
	if selected {
		arrowStyle := tcell.StyleDefault.Foreground(r.theme.HighlightFg).Bold(true)
		x = r.drawTextLine(0, y, w, "→ ", arrowStyle)
	} else {
		x = r.drawTextLine(0, y, w, "  ", tcell.StyleDefault)
	}
	x = r.drawTextLine(x, y, w-x, "+ ", tcell.StyleDefault)

	style := tcell.StyleDefault.Foreground(r.theme.CreateFg)
	if selected {
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}
	label := "Create new"
	if input != "" {
		label = "Create new: " + input
	}
	r.drawTextLine(x, y, w-x, label, style)
}

// drawTextLine writes text at (x, y) clipped to width, returning the x
// position after the last written cell.
func (r *Renderer) drawTextLine(x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return x
	}
	limit := x + width
	for _, ru := range text {
		rw := runeWidth(ru)
		if x+rw > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += rw
	}
	return x
}

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
