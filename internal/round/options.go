package round

import (
	"github.com/jonboulle/clockwork"

	"github.com/osse101/ColorRush_Go/internal/event"
)

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces the wall clock, typically with a clockwork.FakeClock in tests
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRNG replaces the outcome source. rng(n) must return a value in [0, n).
func WithRNG(rng func(n int) int) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithBus publishes every state change on bus
func WithBus(bus event.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithSessionID tags snapshots and events with the owning session
func WithSessionID(id string) Option {
	return func(e *Engine) { e.sessionID = id }
}
