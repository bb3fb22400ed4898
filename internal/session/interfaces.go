package session

import (
	"context"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/rules"
)

// Service is the game surface exposed to transports.
// Every call that names a session refreshes its idle timeout.
type Service interface {
	Create(ctx context.Context) (domain.Snapshot, error)
	Snapshot(ctx context.Context, id string) (domain.Snapshot, error)
	SelectColor(ctx context.Context, id string, color domain.Color) (domain.Snapshot, error)
	TogglePause(ctx context.Context, id string) (domain.Snapshot, error)
	ResetGame(ctx context.Context, id string) (domain.Snapshot, error)
	ToggleAutoAdvance(ctx context.Context, id string) (domain.Snapshot, error)
	Close(ctx context.Context, id string) error
	Exists(id string) bool
	Count() int
	Rules() rules.Rules
}
