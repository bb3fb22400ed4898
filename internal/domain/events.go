package domain

// Event type constants published by the round engine on the event bus.
// Every event carries the session Snapshot taken right after the change.
//
// Event types follow the pattern: <entity>.<action> (e.g., "round.resolved")
const (
	// EventTypeRoundStarted is published when a fresh SELECTION phase begins
	EventTypeRoundStarted = "round.started"

	// EventTypeRoundTick is published once per second while the selection window runs
	EventTypeRoundTick = "round.tick"

	// EventTypeSelectionMade is published when the player locks in a color
	EventTypeSelectionMade = "round.selection_made"

	// EventTypeRoundCountdown is published when the selection window closes
	EventTypeRoundCountdown = "round.countdown"

	// EventTypeRoundResolved is published when the result color is drawn
	EventTypeRoundResolved = "round.resolved"

	// EventTypeRoundParked is published when the result delay elapses with auto-advance off
	EventTypeRoundParked = "round.parked"

	// EventTypeGamePaused and EventTypeGameResumed follow the pause toggle
	EventTypeGamePaused  = "game.paused"
	EventTypeGameResumed = "game.resumed"

	// EventTypeGameReset is published after a reset returns the game to round 1
	EventTypeGameReset = "game.reset"

	// EventTypeAutoAdvanceToggled is published when auto-advance flips
	EventTypeAutoAdvanceToggled = "game.autoplay_toggled"

	// EventTypeSessionClosed is published when a session's engine stops
	EventTypeSessionClosed = "session.closed"
)

// RoundEventPayload is the payload of every engine event
type RoundEventPayload struct {
	Snapshot Snapshot `json:"snapshot"`
	// Resolved is set on round.resolved when the round produced a history entry
	Resolved *Round `json:"resolved,omitempty"`
}
