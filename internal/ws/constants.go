package ws

import "time"

// Connection settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	outboxSize     = 16
)

// Client actions
const (
	ActionSelect   = "select"
	ActionPause    = "pause"
	ActionReset    = "reset"
	ActionAutoplay = "autoplay"
)

// Server message types in addition to the round engine events
const (
	MessageTypeSnapshot = "snapshot"
	MessageTypeResult   = "command.result"
	MessageTypeError    = "command.error"
)

// URLParamSessionID is the chi route parameter holding the session ID
const URLParamSessionID = "id"

// Log messages
const (
	LogMsgUpgradeFailed = "WebSocket upgrade failed"
	LogMsgConnected     = "WebSocket client connected"
	LogMsgDisconnected  = "WebSocket client disconnected"
	LogMsgReadError     = "WebSocket read error"
	LogMsgWriteError    = "WebSocket write error"
	LogMsgOutboxFull    = "WebSocket outbox full, reply dropped"
)
