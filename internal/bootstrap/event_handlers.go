package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/metrics"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
	Rules    rules.Rules
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector and the SSE bridge that feeds streaming clients.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector(metrics.GameAmounts{
		WinAmount: deps.Rules.WinAmount,
		BetAmount: deps.Rules.BetAmount,
	})
	if err := collector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	return nil
}
