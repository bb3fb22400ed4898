package session

// Log messages
const (
	LogMsgSessionCreated = "Session created"
	LogMsgSessionEvicted = "Session evicted"
	LogMsgSessionClosed  = "Session closed"
	LogMsgShutdown       = "Stopping all sessions"
	LogMsgEngineExited   = "Round engine exited with error"
)

// ErrMsgShuttingDown is attached to errors returned after Shutdown
const ErrMsgShuttingDown = "session manager is shutting down"
