package metrics

import (
	"context"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/logger"
)

// EventMetricsCollector subscribes to round engine events and records metrics
type EventMetricsCollector struct {
	rules GameAmounts
}

// GameAmounts are the coin amounts a round can move
type GameAmounts struct {
	WinAmount int
	BetAmount int
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector(amounts GameAmounts) *EventMetricsCollector {
	return &EventMetricsCollector{rules: amounts}
}

// Register subscribes to every round engine event
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, event.GameTypes, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SessionClosed:
		SessionsClosed.Inc()
		return nil
	case event.RoundResolved:
	default:
		return nil
	}

	log := logger.FromContext(ctx)
	payload, err := event.DecodePayload[domain.RoundEventPayload](evt.Payload)
	if err != nil {
		log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	if payload.Resolved == nil {
		RoundsUnplayed.Inc()
		return nil
	}

	r := payload.Resolved
	RoundsResolved.WithLabelValues(string(r.Outcome), string(r.ResultColor)).Inc()
	if r.IsWin() {
		CoinsWon.Add(float64(e.rules.WinAmount))
	} else {
		CoinsLost.Add(float64(e.rules.BetAmount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type, "outcome", r.Outcome)
	return nil
}
