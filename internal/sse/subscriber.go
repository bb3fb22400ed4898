package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every round engine event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, event.GameTypes, s.handleRoundEvent)
	slog.Info(LogMsgSubscribed, "types", event.GameTypes)
}

// handleRoundEvent forwards an engine event to the clients of its session.
// It runs on the engine goroutine, so it only hands the event to the hub.
func (s *Subscriber) handleRoundEvent(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.RoundEventPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(evt.SessionID(), string(evt.Type), payload)

	if evt.Type != event.RoundTick {
		slog.Debug(LogMsgEventBroadcast,
			"event_type", evt.Type,
			"session_id", evt.SessionID(),
			"phase", payload.Snapshot.Phase)
	}
	return nil
}
