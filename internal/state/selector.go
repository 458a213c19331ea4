// Package state owns the interactive selector session: query buffer,
// cursor, scroll, the cached entry list and its ranking, and the sub-flow
// bookkeeping for the rename prompt and delete confirmation.
package state

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kk-code-lab/try/internal/fs"
	"github.com/kk-code-lab/try/internal/score"
	"github.com/kk-code-lab/try/internal/textutil"
)

// Mode identifies which input flow currently owns the terminal.
type Mode int

const (
	ModeSelect Mode = iota
	ModePromptName
	ModeConfirmDelete
)

// SelectionKind classifies how the session resolved.
type SelectionKind int

const (
	SelectOpen SelectionKind = iota
	SelectCreate
	SelectCancel
)

// Selection is the terminal result of a selector session. Cancel carries
// no path.
type Selection struct {
	Kind SelectionKind
	Path string
}

// Lister is the directory-listing collaborator.
type Lister func(root string) ([]fs.Entry, error)

// Frame is the per-redraw contract handed to the renderer.
type Frame struct {
	Width, Height  int
	Cursor, Scroll int
	Input          string
	Entries        []fs.Entry
	StatusMsg      string
	DeletePending  bool
	Now            time.Time
}

// Selector is the single owner of interactive session state. All mutation
// happens through Reduce on the event-loop goroutine.
type Selector struct {
	BasePath string
	Width    int
	Height   int
	Cursor   int
	Scroll   int
	Input    string
	Mode     Mode

	StatusMsg string
	Ranked    []fs.Entry
	Result    *Selection

	// Sub-flow requests picked up by the application layer, which runs
	// the cooked-mode prompts and reports back via completion actions.
	PendingRename bool
	PendingDelete *fs.Entry

	cache []fs.Entry // nil until loaded; reset to nil on invalidation
	sizes map[string]int64
	dirty bool
	list  Lister
	now   func() time.Time
}

// NewSelector builds a selector over basePath seeded with an initial
// query. The query is sanitized the same way typed input is.
func NewSelector(basePath, initialQuery string, width, height int, list Lister, now func() time.Time) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{
		BasePath: basePath,
		Width:    width,
		Height:   height,
		Input:    textutil.SanitizeQuery(initialQuery),
		sizes:    make(map[string]int64),
		dirty:    true,
		list:     list,
		now:      now,
	}
}

// Dirty reports whether the next loop turn must refresh and redraw.
func (s *Selector) Dirty() bool { return s.dirty }

// Done reports whether a final selection has been made.
func (s *Selector) Done() bool { return s.Result != nil }

// totalRows is the ranked entry count plus the create-new row.
func (s *Selector) totalRows() int { return len(s.Ranked) + 1 }

// Reduce applies one action to the state. Sub-flow completion actions are
// accepted in any mode; everything else only while selecting.
func (s *Selector) Reduce(action Action) {
	switch a := action.(type) {
	case NameEnteredAction:
		s.finishRename(a.Name)
		return
	case DeleteResolvedAction:
		s.finishDelete(a)
		return
	case ResizeAction:
		s.Width, s.Height = a.Width, a.Height
		s.dirty = true
		return
	case EntrySizedAction:
		s.sizes[a.Path] = a.Bytes
		s.dirty = true
		return
	}

	if s.Mode != ModeSelect || s.Result != nil {
		return
	}

	switch a := action.(type) {
	case InputCharAction:
		if !textutil.IsQueryRune(a.Char) {
			return
		}
		s.Input += string(a.Char)
		s.Cursor = 0
		s.dirty = true

	case BackspaceAction:
		if s.Input != "" {
			runes := []rune(s.Input)
			s.Input = string(runes[:len(runes)-1])
		}
		s.Cursor = 0
		s.dirty = true

	case MoveUpAction:
		if s.Cursor > 0 {
			s.Cursor--
			s.dirty = true
		}

	case MoveDownAction:
		if s.Cursor+1 < s.totalRows() {
			s.Cursor++
			s.dirty = true
		}

	case ConfirmAction:
		s.confirm()

	case RequestDeleteAction:
		if s.Cursor < len(s.Ranked) {
			entry := s.Ranked[s.Cursor]
			s.PendingDelete = &entry
			s.Mode = ModeConfirmDelete
		}

	case CancelAction:
		s.Result = &Selection{Kind: SelectCancel}
	}
}

func (s *Selector) confirm() {
	if s.Cursor < len(s.Ranked) {
		s.Result = &Selection{Kind: SelectOpen, Path: s.Ranked[s.Cursor].Path}
		return
	}
	if s.Input != "" {
		name := textutil.DatePrefix(s.now()) + "-" + strings.ReplaceAll(s.Input, " ", "-")
		s.Result = &Selection{Kind: SelectCreate, Path: filepath.Join(s.BasePath, name)}
		return
	}
	s.PendingRename = true
	s.Mode = ModePromptName
}

func (s *Selector) finishRename(name string) {
	s.PendingRename = false
	s.Mode = ModeSelect
	s.dirty = true
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	stamped := textutil.DatePrefix(s.now()) + "-" + strings.ReplaceAll(name, " ", "-")
	s.Result = &Selection{Kind: SelectCreate, Path: filepath.Join(s.BasePath, stamped)}
}

func (s *Selector) finishDelete(a DeleteResolvedAction) {
	s.PendingDelete = nil
	s.Mode = ModeSelect
	s.dirty = true
	if a.Deleted {
		s.cache = nil // force a rescan
		s.StatusMsg = "Deleted: " + a.Name
		return
	}
	s.StatusMsg = "Delete cancelled"
}

// Refresh reloads the cache if needed, rescores and resorts entries for
// the current query, clamps the cursor, and recomputes the viewport.
// It reports whether the cache was (re)populated this turn.
func (s *Selector) Refresh() (reloaded bool, err error) {
	if s.cache == nil {
		entries, err := s.list(s.BasePath)
		if err != nil {
			return false, err
		}
		s.cache = entries
		reloaded = true
	}

	now := s.now()
	ranked := make([]fs.Entry, 0, len(s.cache))
	for _, e := range s.cache {
		e.Score = score.Calculate(e.Name, s.Input, e.Created, e.Modified, now)
		if bytes, ok := s.sizes[e.Path]; ok {
			e.Size = bytes
			e.SizeKnown = true
		}
		if s.Input != "" && e.Score == 0.0 {
			continue
		}
		ranked = append(ranked, e)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	s.Ranked = ranked

	if max := s.totalRows() - 1; s.Cursor > max {
		s.Cursor = max
	}
	s.Scroll, _ = ComputeViewport(s.Cursor, s.Scroll, MaxVisibleRows(s.Height), s.totalRows())

	s.dirty = false
	return reloaded, nil
}

// Frame snapshots the state for one redraw.
func (s *Selector) Frame() Frame {
	return Frame{
		Width:         s.Width,
		Height:        s.Height,
		Cursor:        s.Cursor,
		Scroll:        s.Scroll,
		Input:         s.Input,
		Entries:       s.Ranked,
		StatusMsg:     s.StatusMsg,
		DeletePending: s.PendingDelete != nil,
		Now:           s.now(),
	}
}
