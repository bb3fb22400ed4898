package round

import "time"

// TickInterval is the period of the selection countdown display tick
const TickInterval = time.Second

// commandBufferSize bounds commands queued ahead of the control loop
const commandBufferSize = 16

// Log messages
const (
	LogMsgEngineStarted   = "Round engine started"
	LogMsgEngineStopped   = "Round engine stopped"
	LogMsgRoundStarted    = "Round started"
	LogMsgSelectionMade   = "Color selected"
	LogMsgSelectionClosed = "Selection window closed"
	LogMsgRoundResolved   = "Round resolved"
	LogMsgRoundParked     = "Round parked, auto-advance is off"
	LogMsgPaused          = "Game paused"
	LogMsgResumed         = "Game resumed"
	LogMsgReset           = "Game reset"
	LogMsgAutoAdvance     = "Auto-advance toggled"
	LogMsgPublishFailed   = "Failed to publish round event"
)
