package worker

import (
	"context"

	"github.com/osse101/ColorRush_Go/internal/logger"
	"github.com/osse101/ColorRush_Go/internal/metrics"
)

// SessionCounter reports how many sessions are live
type SessionCounter interface {
	Count() int
}

// SessionReportJob publishes the live session count to the active_sessions gauge
type SessionReportJob struct {
	sessions SessionCounter
}

// NewSessionReportJob creates a report job over sessions
func NewSessionReportJob(sessions SessionCounter) *SessionReportJob {
	return &SessionReportJob{sessions: sessions}
}

// Process samples the session count
func (j *SessionReportJob) Process(ctx context.Context) error {
	n := j.sessions.Count()
	metrics.ActiveSessions.Set(float64(n))
	logger.FromContext(ctx).Debug(LogMsgSessionReport, "count", n)
	return nil
}
