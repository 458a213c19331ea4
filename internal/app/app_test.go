package app

import (
	"strings"
	"testing"
	"time"

	fspkg "github.com/kk-code-lab/try/internal/fs"
	statepkg "github.com/kk-code-lab/try/internal/state"
)

type fakeSizer struct {
	started  []fspkg.SizeRequest
	canceled []int
}

func (s *fakeSizer) Start(req fspkg.SizeRequest) { s.started = append(s.started, req) }
func (s *fakeSizer) Cancel(token int)            { s.canceled = append(s.canceled, token) }

func TestReadLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain line", "hello\n", "hello"},
		{"crlf", "hello\r\n", "hello"},
		{"eof without newline", "hello", "hello"},
		{"empty input", "", ""},
		{"inner spaces kept", "  a b  \n", "  a b  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readLine(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("readLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDispatchNeverBlocks(t *testing.T) {
	app := &Application{actionCh: make(chan statepkg.Action, 1)}
	app.actionCh <- statepkg.ConfirmAction{}

	done := make(chan struct{})
	go func() {
		app.dispatch(statepkg.BackspaceAction{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full channel")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-app.actionCh:
		case <-time.After(time.Second):
			t.Fatal("queued action never arrived")
		}
	}
}

func TestRequestSizesCoversUnsizedEntries(t *testing.T) {
	now := time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)
	entries := []fspkg.Entry{
		{Name: "a", Path: "/t/a", Modified: now},
		{Name: "b", Path: "/t/b", Modified: now},
	}
	lister := func(string) ([]fspkg.Entry, error) { return entries, nil }

	sizer := &fakeSizer{}
	app := &Application{
		sel:      statepkg.NewSelector("/t", "", 80, 24, lister, func() time.Time { return now }),
		actionCh: make(chan statepkg.Action, 16),
		sizer:    sizer,
		tokens:   make(map[string]int),
	}
	if _, err := app.sel.Refresh(); err != nil {
		t.Fatal(err)
	}

	app.requestSizes()
	if len(sizer.started) != 2 {
		t.Fatalf("started %d jobs, want 2", len(sizer.started))
	}

	// Once an entry is sized, a later rescan should not size it again,
	// and the stale jobs get cancelled.
	app.sel.Reduce(statepkg.EntrySizedAction{Path: "/t/a", Bytes: 10})
	if _, err := app.sel.Refresh(); err != nil {
		t.Fatal(err)
	}
	sizer.started = nil
	app.requestSizes()

	if len(sizer.canceled) != 2 {
		t.Fatalf("canceled %d jobs, want 2", len(sizer.canceled))
	}
	if len(sizer.started) != 1 || sizer.started[0].Path != "/t/b" {
		t.Fatalf("restarted jobs = %+v, want just /t/b", sizer.started)
	}
}
