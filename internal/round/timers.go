package round

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

// phaseChan returns the pending phase timer channel, or nil so a select never picks it
func (e *Engine) phaseChan() <-chan time.Time {
	if e.phaseTimer == nil {
		return nil
	}
	return e.phaseTimer.Chan()
}

func (e *Engine) tickChan() <-chan time.Time {
	if e.ticker == nil {
		return nil
	}
	return e.ticker.Chan()
}

// drainTimers handles every timer that has already fired, phase timer first
func (e *Engine) drainTimers(ctx context.Context) {
	for {
		select {
		case <-e.phaseChan():
			e.onPhaseTimer(ctx)
			continue
		default:
		}

		select {
		case <-e.tickChan():
			e.onTick(ctx)
			continue
		default:
		}

		return
	}
}

func (e *Engine) armPhaseTimer(d time.Duration) {
	e.stopPhaseTimer()
	e.deadline = e.clock.Now().Add(d)
	e.phaseTimer = e.clock.NewTimer(d)
}

// pauseTimers cancels the pending timers and remembers how much of the phase was left
func (e *Engine) pauseTimers() {
	e.remaining = 0
	e.suspended = e.phaseTimer != nil
	if e.suspended {
		e.remaining = max(0, e.deadline.Sub(e.clock.Now()))
	}
	e.stopTimers()
}

// resumeTimers re-arms the phase timer with the time left when paused
func (e *Engine) resumeTimers() {
	if !e.suspended {
		return
	}
	e.armPhaseTimer(e.remaining)
	e.remaining = 0
	e.suspended = false
	if e.state.Phase == domain.PhaseSelection {
		e.ticker = e.clock.NewTicker(TickInterval)
	}
}

func (e *Engine) stopTimers() {
	e.stopPhaseTimer()
	e.stopTicker()
}

func (e *Engine) stopPhaseTimer() {
	if e.phaseTimer != nil {
		stopAndDrainTimer(e.phaseTimer)
		e.phaseTimer = nil
	}
}

func (e *Engine) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		select {
		case <-e.ticker.Chan():
		default:
		}
		e.ticker = nil
	}
}

// stopAndDrainTimer stops a timer and drains its channel if it already fired
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
