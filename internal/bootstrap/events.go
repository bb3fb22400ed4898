package bootstrap

import (
	"log/slog"

	"github.com/osse101/ColorRush_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus every engine publishes to.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "types", len(event.GameTypes))
	return bus
}
