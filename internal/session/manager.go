package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/round"
	"github.com/osse101/ColorRush_Go/internal/rules"
)

// Session is one player's game
type Session struct {
	ID        string
	Engine    *round.Engine
	CreatedAt time.Time

	cancel context.CancelFunc
}

// Config holds the manager limits
type Config struct {
	Capacity int
	TTL      time.Duration
}

// Manager owns one round engine per session. Idle sessions expire after the
// configured TTL and expiry stops their engine.
type Manager struct {
	rules    rules.Rules
	bus      event.Bus
	capacity int
	opts     []round.Option

	// mu serializes the capacity check with the insert
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	base     context.Context
	stop     context.CancelFunc
}

// NewManager creates a session manager. opts are applied to every engine it creates.
func NewManager(cfg Config, r rules.Rules, bus event.Bus, opts ...round.Option) *Manager {
	base, stop := context.WithCancel(context.Background())
	m := &Manager{
		rules:    r,
		bus:      bus,
		capacity: cfg.Capacity,
		opts:     opts,
		base:     base,
		stop:     stop,
	}
	m.sessions = expirable.NewLRU[string, *Session](cfg.Capacity, m.onEvict, cfg.TTL)
	return m
}

// onEvict runs for expiry, explicit removal and purge alike.
// It is called with the LRU lock held, so it must not touch m.sessions.
func (m *Manager) onEvict(id string, s *Session) {
	slog.Debug(LogMsgSessionEvicted, "session_id", id)
	s.cancel()
}

// Create starts a new session and returns its first snapshot
func (m *Manager) Create(ctx context.Context) (domain.Snapshot, error) {
	if err := m.CheckHealth(ctx); err != nil {
		return domain.Snapshot{}, err
	}

	m.mu.Lock()
	if m.sessions.Len() >= m.capacity {
		m.mu.Unlock()
		return domain.Snapshot{}, fmt.Errorf("%w: %d active", domain.ErrSessionLimit, m.capacity)
	}

	id := uuid.NewString()
	engineCtx, cancel := context.WithCancel(m.base)
	opts := append([]round.Option{round.WithSessionID(id)}, m.opts...)
	if m.bus != nil {
		opts = append(opts, round.WithBus(m.bus))
	}
	s := &Session{
		ID:        id,
		Engine:    round.NewEngine(m.rules, opts...),
		CreatedAt: time.Now(),
		cancel:    cancel,
	}
	m.sessions.Add(id, s)
	m.mu.Unlock()

	go func() {
		if err := s.Engine.Run(engineCtx); err != nil {
			slog.Error(LogMsgEngineExited, "session_id", id, "error", err)
		}
	}()

	slog.Info(LogMsgSessionCreated, "session_id", id)
	return s.Engine.Snapshot(ctx)
}

// get returns the session and refreshes its TTL
func (m *Manager) get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	// Get does not extend expiry; re-adding does, without eviction
	m.sessions.Add(id, s)
	return s, nil
}

// Session returns the live session with the given ID
func (m *Manager) Session(id string) (*Session, error) {
	return m.get(id)
}

// Exists reports whether the session is live without refreshing it
func (m *Manager) Exists(id string) bool {
	_, ok := m.sessions.Peek(id)
	return ok
}

// Snapshot returns the current state of a session
func (m *Manager) Snapshot(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Engine.Snapshot(ctx)
}

// SelectColor forwards a selection to the session's engine
func (m *Manager) SelectColor(ctx context.Context, id string, color domain.Color) (domain.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Engine.SelectColor(ctx, color)
}

// TogglePause forwards a pause toggle to the session's engine
func (m *Manager) TogglePause(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Engine.TogglePause(ctx)
}

// ResetGame forwards a reset to the session's engine
func (m *Manager) ResetGame(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Engine.ResetGame(ctx)
}

// ToggleAutoAdvance forwards an auto-advance toggle to the session's engine
func (m *Manager) ToggleAutoAdvance(ctx context.Context, id string) (domain.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return s.Engine.ToggleAutoAdvance(ctx)
}

// Close stops a session's engine and forgets it
func (m *Manager) Close(ctx context.Context, id string) error {
	s, ok := m.sessions.Peek(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	m.sessions.Remove(id)

	select {
	case <-s.Engine.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	slog.Info(LogMsgSessionClosed, "session_id", id)
	return nil
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	return m.sessions.Len()
}

// IDs returns the live session IDs, oldest first
func (m *Manager) IDs() []string {
	return m.sessions.Keys()
}

// Rules returns the rules every session plays by
func (m *Manager) Rules() rules.Rules {
	return m.rules
}

// CheckHealth reports an error once the manager has been shut down
func (m *Manager) CheckHealth(_ context.Context) error {
	if m.base.Err() != nil {
		return fmt.Errorf("%w: %s", domain.ErrEngineStopped, ErrMsgShuttingDown)
	}
	return nil
}

// Shutdown stops every engine and waits for them to exit or ctx to end
func (m *Manager) Shutdown(ctx context.Context) error {
	slog.Info(LogMsgShutdown, "count", m.sessions.Len())
	sessions := m.sessions.Values()
	m.sessions.Purge()
	m.stop()

	for _, s := range sessions {
		select {
		case <-s.Engine.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

var _ Service = (*Manager)(nil)
