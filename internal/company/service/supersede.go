package service

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the cancellation cause of a lookup replaced by a newer
// one from the same session.
var ErrSuperseded = errors.New("lookup superseded by a newer one")

// Supersessor tracks the in-flight lookup of each session. Starting a new
// lookup cancels the previous one with ErrSuperseded.
type Supersessor struct {
	mu       sync.Mutex
	inflight map[string]*inflightLookup
}

type inflightLookup struct {
	cancel context.CancelCauseFunc
}

func NewSupersessor() *Supersessor {
	return &Supersessor{inflight: make(map[string]*inflightLookup)}
}

// Begin registers a lookup for session and returns its context together
// with a release func that must be called when the lookup ends. An empty
// session is never superseded.
func (s *Supersessor) Begin(ctx context.Context, session string) (context.Context, func()) {
	if session == "" {
		return ctx, func() {}
	}
	ctx, cancel := context.WithCancelCause(ctx)
	current := &inflightLookup{cancel: cancel}

	s.mu.Lock()
	if previous, ok := s.inflight[session]; ok {
		previous.cancel(ErrSuperseded)
	}
	s.inflight[session] = current
	s.mu.Unlock()

	return ctx, func() {
		s.mu.Lock()
		if s.inflight[session] == current {
			delete(s.inflight, session)
		}
		s.mu.Unlock()
		cancel(nil)
	}
}

// Superseded reports whether ctx was cancelled by a newer lookup.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), ErrSuperseded)
}

// InFlight reports the number of sessions with a running lookup.
func (s *Supersessor) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}
