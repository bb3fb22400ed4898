package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// SessionID returns the session the event belongs to, or "" for global events
func (e Event) SessionID() string {
	id, _ := e.GetMetadataValue(MetadataKeySessionID).(string)
	return id
}

// Game event types
const (
	RoundStarted       Type = domain.EventTypeRoundStarted
	RoundTick          Type = domain.EventTypeRoundTick
	SelectionMade      Type = domain.EventTypeSelectionMade
	RoundCountdown     Type = domain.EventTypeRoundCountdown
	RoundResolved      Type = domain.EventTypeRoundResolved
	RoundParked        Type = domain.EventTypeRoundParked
	GamePaused         Type = domain.EventTypeGamePaused
	GameResumed        Type = domain.EventTypeGameResumed
	GameReset          Type = domain.EventTypeGameReset
	AutoAdvanceToggled Type = domain.EventTypeAutoAdvanceToggled
	SessionClosed      Type = domain.EventTypeSessionClosed
)

// GameTypes lists every event type a round engine can publish
var GameTypes = []Type{
	RoundStarted,
	RoundTick,
	SelectionMade,
	RoundCountdown,
	RoundResolved,
	RoundParked,
	GamePaused,
	GameResumed,
	GameReset,
	AutoAdvanceToggled,
	SessionClosed,
}

// NewGameEvent builds a versioned event tagged with its session
func NewGameEvent(eventType Type, sessionID string, payload domain.RoundEventPayload) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeySessionID: sessionID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the publishing goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes a handler to every given event type
func SubscribeAll(bus Bus, types []Type, handler Handler) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}
