package main

import (
	"context"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

// Game is the engine surface the player drives
type Game interface {
	SelectColor(ctx context.Context, color domain.Color) (domain.Snapshot, error)
	TogglePause(ctx context.Context) (domain.Snapshot, error)
	ResetGame(ctx context.Context) (domain.Snapshot, error)
	ToggleAutoAdvance(ctx context.Context) (domain.Snapshot, error)
}

// action is what a key press asks for
type action int

const (
	actionNone action = iota
	actionCommand
	actionQuit
)

// dispatch applies the command bound to key. Unbound keys are ignored.
func dispatch(ctx context.Context, g Game, key byte) (action, error) {
	var err error
	switch key {
	case 'r', 'R':
		_, err = g.SelectColor(ctx, domain.ColorRed)
	case 'g', 'G':
		_, err = g.SelectColor(ctx, domain.ColorGreen)
	case 'v', 'V':
		_, err = g.SelectColor(ctx, domain.ColorViolet)
	case 'p', 'P', ' ':
		_, err = g.TogglePause(ctx)
	case 'x', 'X':
		_, err = g.ResetGame(ctx)
	case 'a', 'A':
		_, err = g.ToggleAutoAdvance(ctx)
	case 'q', 'Q', 3: // 3 is Ctrl-C in raw mode
		return actionQuit, nil
	default:
		return actionNone, nil
	}
	return actionCommand, err
}
