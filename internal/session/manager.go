package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	app_errors "chatbuilder/backend/internal/errors"
)

// Manager keeps one live session per chat. Sessions of different chats are
// independent and may have completions in flight at the same time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	dispatcher Dispatcher
	opts       []Option
	idleTTL    time.Duration
	now        func() time.Time

	turnsMu  sync.Mutex
	inFlight map[*Session]struct{}
	turns    sync.WaitGroup
}

// cancelGrace bounds how long Drain waits for cancelled turns to resolve.
const cancelGrace = 5 * time.Second

// NewManager creates a registry whose sessions dispatch through dispatcher.
// Sessions idle for longer than idleTTL are evicted by Sweep; zero keeps them
// until Close.
func NewManager(dispatcher Dispatcher, idleTTL time.Duration, opts ...Option) *Manager {
	m := &Manager{
		sessions:   make(map[string]*Session),
		dispatcher: dispatcher,
		idleTTL:    idleTTL,
		now:        time.Now,
		inFlight:   make(map[*Session]struct{}),
	}
	m.opts = append(slices.Clone(opts), withTurnTracker(m))
	return m
}

// Open returns the live session for chatID, creating it when absent. Opening
// an existing session ignores initialPrompt, so a repeated open never
// re-sends it.
func (m *Manager) Open(chatID, userID, initialPrompt string) (*Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		if s.userID != userID {
			return nil, false, fmt.Errorf("%w: chat %s belongs to another user", app_errors.ErrPermission, chatID)
		}
		s.touch()
		return s, false, nil
	}

	s := New(chatID, userID, initialPrompt, m.dispatcher, m.opts...)
	m.sessions[chatID] = s
	slog.Info("Opened chat session", "chat_id", chatID, "user_id", userID, "initial_prompt", initialPrompt != "")
	return s, true, nil
}

// Get returns the live session for chatID.
func (m *Manager) Get(chatID, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[chatID]
	if !ok {
		return nil, fmt.Errorf("%w: no open session for chat %s", app_errors.ErrNotFound, chatID)
	}
	if s.userID != userID {
		return nil, fmt.Errorf("%w: chat %s belongs to another user", app_errors.ErrPermission, chatID)
	}
	return s, nil
}

// Close discards the session. A completion still in flight finishes against
// the discarded session and is still waited for by Drain.
func (m *Manager) Close(chatID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[chatID]; !ok {
		return false
	}
	delete(m.sessions, chatID)
	slog.Info("Closed chat session", "chat_id", chatID)
	return true
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep(now time.Time) int {
	if m.idleTTL <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.idleFor(now) > m.idleTTL {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Evicted idle chat sessions", "count", removed, "remaining", len(m.sessions))
	}
	return removed
}

// Drain waits until every turn in flight, including those of closed sessions,
// has recorded its reply. When ctx ends first the remaining turns are
// cancelled, Drain waits up to cancelGrace for their markers and returns
// ctx's error.
func (m *Manager) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.turns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
	}

	m.turnsMu.Lock()
	pending := make([]*Session, 0, len(m.inFlight))
	for s := range m.inFlight {
		pending = append(pending, s)
	}
	m.turnsMu.Unlock()

	slog.Warn("Cancelling completions still in flight", "count", len(pending))
	for _, s := range pending {
		s.Cancel()
	}

	select {
	case <-done:
	case <-time.After(cancelGrace):
		slog.Error("Cancelled completions did not finish", "count", len(pending))
	}
	return ctx.Err()
}

func (m *Manager) turnStarted(s *Session) {
	m.turnsMu.Lock()
	defer m.turnsMu.Unlock()
	m.inFlight[s] = struct{}{}
	m.turns.Add(1)
}

func (m *Manager) turnFinished(s *Session) {
	m.turnsMu.Lock()
	defer m.turnsMu.Unlock()
	delete(m.inFlight, s)
	m.turns.Done()
}

// Run sweeps periodically until ctx is done.
func (m *Manager) Run(ctx context.Context) {
	if m.idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(m.idleTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(m.now())
		}
	}
}
