// Package session owns the client's session token.
//
// The token lives in the encrypted store. A Session loads it once in the
// background, exposes the current state synchronously, and notifies
// subscribers of every change. Writes go to the store before they become
// visible to readers.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/railticket/internal/logging"
	"github.com/dmitrijs2005/railticket/internal/observe"
)

// Status is the lifecycle of the session token.
type Status int

const (
	StateLoading Status = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s Status) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// State is an immutable snapshot. Token is empty unless Status is
// StateAuthenticated.
type State struct {
	Status Status
	Token  string
}

// Store is the slice of the encrypted store the session needs.
type Store interface {
	Get(ctx context.Context, key string, v any) bool
	Set(ctx context.Context, key string, v any) error
	Remove(ctx context.Context, key string) error
}

type Session struct {
	store  Store
	key    string
	logger logging.Logger
	state  *observe.Value[State]

	mu      sync.Mutex // serializes writes and the initial load
	loaded  bool       // an explicit write or the initial load has settled the state
	started bool
	ready   chan struct{}
}

func New(store Store, key string, logger logging.Logger) *Session {
	return &Session{
		store:  store,
		key:    key,
		logger: logger.With("module", "session"),
		state:  observe.NewValue(State{Status: StateLoading}),
		ready:  make(chan struct{}),
	}
}

// Start launches the one-time background load. Later calls are no-ops.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.load(ctx)
}

func (s *Session) load(ctx context.Context) {
	var token string
	found := s.store.Get(ctx, s.key, &token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		s.logger.Debug(ctx, "initial load superseded by an explicit write")
		return
	}
	next := State{Status: StateUnauthenticated}
	if found && token != "" {
		next = State{Status: StateAuthenticated, Token: token}
	}
	s.publishLocked(next)
	s.logger.Debug(ctx, "session loaded", "status", next.Status.String())
}

// Ready is closed once the state has left StateLoading.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

func (s *Session) Snapshot() State {
	return s.state.Load()
}

// SetToken persists token and then publishes it. An empty token clears the
// session. On a store failure the visible state is left unchanged.
func (s *Session) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := State{Status: StateUnauthenticated}
	if token == "" {
		if err := s.store.Remove(ctx, s.key); err != nil {
			return err
		}
	} else {
		if err := s.store.Set(ctx, s.key, token); err != nil {
			return err
		}
		next = State{Status: StateAuthenticated, Token: token}
	}

	s.publishLocked(next)
	return nil
}

// Clear is SetToken(ctx, "").
func (s *Session) Clear(ctx context.Context) error {
	return s.SetToken(ctx, "")
}

// Subscribe delivers the current state and then every change. Values a slow
// reader has not picked up are replaced by newer ones. cancel closes the
// channel.
func (s *Session) Subscribe() (<-chan State, func()) {
	return s.state.Subscribe()
}

func (s *Session) publishLocked(next State) {
	s.state.Store(next)
	if !s.loaded {
		s.loaded = true
		close(s.ready)
	}
}
