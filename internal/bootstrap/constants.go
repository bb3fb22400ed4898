package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingColorRush   = "Starting Color Rush"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for rules loading
const (
	ErrMsgFailedLoadRules = "failed to load game rules"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized = "Event system initialized"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Log messages for background jobs
const (
	LogMsgSessionReportScheduled = "Session report scheduled"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownSessions = "Closing game sessions..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionsForcedClose  = "Game sessions did not stop in time"
)

// Background worker sizing
const (
	WorkerPoolSize      = 1
	WorkerPoolQueueSize = 4
)
