package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/internal/utils"
)

// ErrAlreadyRunning is returned by Run when the control loop was started before
var ErrAlreadyRunning = errors.New("round engine already running")

type commandKind int

const (
	cmdSnapshot commandKind = iota
	cmdSelect
	cmdTogglePause
	cmdReset
	cmdToggleAutoAdvance
)

type command struct {
	kind  commandKind
	color domain.Color
	reply chan domain.Snapshot
}

// Engine runs the round lifecycle of one game.
//
// All game state is owned by the goroutine running Run. Commands and timer
// expirations are serialized through that goroutine, so no state is shared.
type Engine struct {
	rules     rules.Rules
	clock     clockwork.Clock
	rng       func(n int) int
	bus       event.Bus
	sessionID string

	cmds    chan command
	done    chan struct{}
	started atomic.Bool

	// Owned by the control loop
	state      domain.Snapshot
	phaseTimer clockwork.Timer
	ticker     clockwork.Ticker
	deadline   time.Time
	// remaining is the unexpired part of the phase timer while paused
	remaining time.Duration
	suspended bool
	// parked is set when the result delay elapsed with auto-advance off
	parked bool
}

// NewEngine creates an engine for the given rules. Call Run to start the first round.
func NewEngine(r rules.Rules, opts ...Option) *Engine {
	e := &Engine{
		rules: r,
		clock: clockwork.NewRealClock(),
		rng:   utils.SecureIndex,
		cmds:  make(chan command, commandBufferSize),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = e.freshState()
	e.state.AutoAdvance = r.AutoAdvance
	return e
}

// SessionID returns the session the engine belongs to
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Rules returns the rules the engine plays by
func (e *Engine) Rules() rules.Rules {
	return e.rules
}

// Done is closed once the control loop has exited
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Run starts the first round and processes commands and timers until ctx is cancelled
func (e *Engine) Run(ctx context.Context) error {
	if !e.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(e.done)

	log := slog.With("session_id", e.sessionID)
	log.Debug(LogMsgEngineStarted)

	e.startSelection()
	e.publish(ctx, domain.EventTypeRoundStarted, nil)

	for {
		select {
		case <-ctx.Done():
			e.stopTimers()
			e.publish(context.WithoutCancel(ctx), domain.EventTypeSessionClosed, nil)
			log.Debug(LogMsgEngineStopped, "round", e.state.RoundNumber)
			return nil
		case <-e.phaseChan():
			e.onPhaseTimer(ctx)
		case <-e.tickChan():
			e.onTick(ctx)
		case cmd := <-e.cmds:
			// Timers that already fired happened before the command arrived
			e.drainTimers(ctx)
			e.apply(ctx, cmd)
			cmd.reply <- e.snapshot()
		}
	}
}

// SelectColor locks in the player's color for the current round.
// It has no effect outside SELECTION, after a selection was made, or for an invalid color.
func (e *Engine) SelectColor(ctx context.Context, c domain.Color) (domain.Snapshot, error) {
	return e.send(ctx, command{kind: cmdSelect, color: c})
}

// TogglePause suspends or resumes every pending timer
func (e *Engine) TogglePause(ctx context.Context) (domain.Snapshot, error) {
	return e.send(ctx, command{kind: cmdTogglePause})
}

// ResetGame restores the starting balance and begins round 1
func (e *Engine) ResetGame(ctx context.Context) (domain.Snapshot, error) {
	return e.send(ctx, command{kind: cmdReset})
}

// ToggleAutoAdvance flips whether RESULT moves on to the next round by itself
func (e *Engine) ToggleAutoAdvance(ctx context.Context) (domain.Snapshot, error) {
	return e.send(ctx, command{kind: cmdToggleAutoAdvance})
}

// Snapshot returns a copy of the current game state
func (e *Engine) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return e.send(ctx, command{kind: cmdSnapshot})
}

func (e *Engine) send(ctx context.Context, cmd command) (domain.Snapshot, error) {
	cmd.reply = make(chan domain.Snapshot, 1)

	select {
	case e.cmds <- cmd:
	case <-e.done:
		return domain.Snapshot{}, domain.ErrEngineStopped
	case <-ctx.Done():
		return domain.Snapshot{}, fmt.Errorf("%w: %w", domain.ErrEngineStopped, ctx.Err())
	}

	select {
	case snap := <-cmd.reply:
		return snap, nil
	case <-e.done:
		return domain.Snapshot{}, domain.ErrEngineStopped
	case <-ctx.Done():
		return domain.Snapshot{}, fmt.Errorf("%w: %w", domain.ErrEngineStopped, ctx.Err())
	}
}

func (e *Engine) apply(ctx context.Context, cmd command) {
	switch cmd.kind {
	case cmdSelect:
		e.selectColor(ctx, cmd.color)
	case cmdTogglePause:
		e.togglePause(ctx)
	case cmdReset:
		e.reset(ctx)
	case cmdToggleAutoAdvance:
		e.toggleAutoAdvance(ctx)
	}
}

func (e *Engine) selectColor(ctx context.Context, c domain.Color) {
	if !c.Valid() || e.state.Phase != domain.PhaseSelection || e.state.CurrentSelection.IsSet() {
		return
	}
	e.state.CurrentSelection = c
	slog.Debug(LogMsgSelectionMade, "session_id", e.sessionID, "round", e.state.RoundNumber, "color", c)
	e.publish(ctx, domain.EventTypeSelectionMade, nil)
}

func (e *Engine) togglePause(ctx context.Context) {
	if e.state.IsPaused {
		e.state.IsPaused = false
		e.resumeTimers()
		slog.Debug(LogMsgResumed, "session_id", e.sessionID, "phase", e.state.Phase)
		e.publish(ctx, domain.EventTypeGameResumed, nil)

		// Auto-advance may have been switched on while paused in a parked result
		if e.parked && e.state.AutoAdvance {
			e.nextRound(ctx)
		}
		return
	}

	e.state.IsPaused = true
	e.pauseTimers()
	slog.Debug(LogMsgPaused, "session_id", e.sessionID, "phase", e.state.Phase, "remaining", e.remaining)
	e.publish(ctx, domain.EventTypeGamePaused, nil)
}

func (e *Engine) reset(ctx context.Context) {
	e.stopTimers()
	autoAdvance := e.state.AutoAdvance
	e.state = e.freshState()
	e.state.AutoAdvance = autoAdvance
	e.startSelection()
	slog.Debug(LogMsgReset, "session_id", e.sessionID)
	e.publish(ctx, domain.EventTypeGameReset, nil)
}

func (e *Engine) toggleAutoAdvance(ctx context.Context) {
	e.state.AutoAdvance = !e.state.AutoAdvance
	slog.Debug(LogMsgAutoAdvance, "session_id", e.sessionID, "auto_advance", e.state.AutoAdvance)
	e.publish(ctx, domain.EventTypeAutoAdvanceToggled, nil)

	if e.state.AutoAdvance && !e.state.IsPaused && e.state.Phase == domain.PhaseResult {
		e.nextRound(ctx)
	}
}

func (e *Engine) onPhaseTimer(ctx context.Context) {
	e.phaseTimer = nil

	switch e.state.Phase {
	case domain.PhaseSelection:
		e.closeSelection(ctx)
	case domain.PhaseCountdown:
		e.resolve(ctx)
	case domain.PhaseResult:
		if e.state.AutoAdvance {
			e.nextRound(ctx)
			return
		}
		e.parked = true
		slog.Debug(LogMsgRoundParked, "session_id", e.sessionID, "round", e.state.RoundNumber)
		e.publish(ctx, domain.EventTypeRoundParked, nil)
	}
}

func (e *Engine) onTick(ctx context.Context) {
	if e.state.Phase != domain.PhaseSelection {
		return
	}
	// The phase timer owns the transition at zero
	secs := ceilSeconds(e.deadline.Sub(e.clock.Now()))
	if secs == 0 || secs == e.state.TimeRemaining {
		return
	}
	e.state.TimeRemaining = secs
	e.publish(ctx, domain.EventTypeRoundTick, nil)
}

// closeSelection freezes the selection and starts the countdown delay
func (e *Engine) closeSelection(ctx context.Context) {
	e.stopTicker()
	e.state.Phase = domain.PhaseCountdown
	e.state.TimeRemaining = 0
	e.armPhaseTimer(e.rules.CountdownDelay())
	slog.Debug(LogMsgSelectionClosed, "session_id", e.sessionID, "round", e.state.RoundNumber,
		"selection", e.state.CurrentSelection)
	e.publish(ctx, domain.EventTypeRoundCountdown, nil)
}

// resolve draws the result and settles the round
func (e *Engine) resolve(ctx context.Context) {
	result := e.drawColor()
	e.state.Phase = domain.PhaseResult
	e.state.CurrentResult = result
	e.armPhaseTimer(e.rules.ResultDelay())

	var resolved *domain.Round
	if e.state.CurrentSelection.IsSet() {
		r := e.settle(result)
		resolved = &r
	}

	slog.Debug(LogMsgRoundResolved, "session_id", e.sessionID, "round", e.state.RoundNumber,
		"selection", e.state.CurrentSelection, "result", result, "outcome", e.state.LastOutcome,
		"balance", e.state.CoinBalance)
	e.publish(ctx, domain.EventTypeRoundResolved, resolved)
}

// settle applies the balance delta and records the round in history and stats
func (e *Engine) settle(result domain.Color) domain.Round {
	r := domain.Round{
		ID:            e.state.RoundNumber,
		SelectedColor: e.state.CurrentSelection,
		ResultColor:   result,
		Outcome:       domain.OutcomeFor(e.state.CurrentSelection, result),
		ResolvedAt:    e.clock.Now(),
	}

	before := e.state.CoinBalance
	if r.IsWin() {
		e.state.CoinBalance += e.rules.WinAmount
		e.state.Stats.Wins++
	} else {
		e.state.CoinBalance = max(0, e.state.CoinBalance-e.rules.BetAmount)
		e.state.Stats.Losses++
	}
	e.state.Stats.RoundsPlayed++
	e.state.Stats.NetCoins += e.state.CoinBalance - before
	e.state.LastOutcome = r.Outcome

	history := make([]domain.Round, 0, min(len(e.state.History)+1, e.rules.HistoryLimit))
	history = append(history, r)
	history = append(history, e.state.History...)
	if len(history) > e.rules.HistoryLimit {
		history = history[:e.rules.HistoryLimit]
	}
	e.state.History = history

	return r
}

// nextRound leaves RESULT and opens the selection window of the following round
func (e *Engine) nextRound(ctx context.Context) {
	e.stopTimers()
	e.state.RoundNumber++
	e.startSelection()
	e.publish(ctx, domain.EventTypeRoundStarted, nil)
}

// startSelection clears the per-round fields and arms the selection timers
func (e *Engine) startSelection() {
	e.parked = false
	e.remaining = 0
	e.suspended = false
	e.state.Phase = domain.PhaseSelection
	e.state.TimeRemaining = e.rules.SelectionSeconds
	e.state.CurrentSelection = domain.ColorNone
	e.state.CurrentResult = domain.ColorNone
	e.state.LastOutcome = domain.OutcomeNone
	e.armPhaseTimer(e.rules.SelectionWindow())
	e.ticker = e.clock.NewTicker(TickInterval)
	slog.Debug(LogMsgRoundStarted, "session_id", e.sessionID, "round", e.state.RoundNumber)
}

func (e *Engine) drawColor() domain.Color {
	return domain.Colors[e.rng(len(domain.Colors))]
}

func (e *Engine) freshState() domain.Snapshot {
	return domain.Snapshot{
		SessionID:   e.sessionID,
		Phase:       domain.PhaseSelection,
		CoinBalance: e.rules.StartingBalance,
		History:     []domain.Round{},
		RoundNumber: 1,
	}
}

func (e *Engine) snapshot() domain.Snapshot {
	s := e.state.Clone()
	s.TakenAt = e.clock.Now()
	return s
}

func (e *Engine) publish(ctx context.Context, eventType string, resolved *domain.Round) {
	if e.bus == nil {
		return
	}
	payload := domain.RoundEventPayload{Snapshot: e.snapshot(), Resolved: resolved}
	evt := event.NewGameEvent(event.Type(eventType), e.sessionID, payload)
	if err := e.bus.Publish(ctx, evt); err != nil {
		slog.Warn(LogMsgPublishFailed, "session_id", e.sessionID, "type", eventType, "error", err)
	}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
