package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgJobDropped is logged when a job arrives after the pool stopped
const LogMsgJobDropped = "Worker pool stopped, job dropped"

// ============================================================================
// Log Messages - Session Report Job
// ============================================================================

// Log messages for the session report job
const (
	LogMsgSessionReport = "Active game sessions"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
