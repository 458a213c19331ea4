package fs

import (
	"context"
	"sync"
)

// Sizer computes recursive directory sizes off the event loop.
type Sizer interface {
	Start(req SizeRequest)
	Cancel(token int)
}

// SizeRequest describes one directory to size.
type SizeRequest struct {
	Token    int
	Path     string
	Callback func(SizeResult)
}

// SizeResult is delivered once the walk completes, unless cancelled first.
type SizeResult struct {
	Token int
	Path  string
	Stats Stats
}

// NewAsyncSizer constructs the default goroutine-based sizer.
func NewAsyncSizer() Sizer {
	return &asyncSizer{
		jobs: make(map[int]context.CancelFunc),
	}
}

type asyncSizer struct {
	mu   sync.Mutex
	jobs map[int]context.CancelFunc
}

func (s *asyncSizer) Start(req SizeRequest) {
	if req.Token == 0 || req.Path == "" || req.Callback == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.jobs[req.Token] = cancel
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.jobs, req.Token)
			s.mu.Unlock()
		}()

		stats := TreeStats(req.Path)

		select {
		case <-ctx.Done():
			return
		default:
		}

		req.Callback(SizeResult{Token: req.Token, Path: req.Path, Stats: stats})
	}()
}

func (s *asyncSizer) Cancel(token int) {
	s.mu.Lock()
	if cancel, ok := s.jobs[token]; ok {
		cancel()
		delete(s.jobs, token)
	}
	s.mu.Unlock()
}
