package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingSessionID      = "Missing session id"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgSessionNotFound    = "Session not found"
	ErrMsgSessionLimit       = "Too many active sessions. Please try again later."
	ErrMsgGameUnavailable    = "Game is not running. Please start a new session."
	ErrMsgInvalidColor       = "Color must be one of RED, GREEN, VIOLET"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgNotAcceptingSessions = "not accepting sessions"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgSessionCreated      = "Session created via API"
	LogMsgCommandFailed       = "Session command failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
)
