package round

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/internal/testing/leaktest"
)

// scriptedRNG returns the index of each color in turn, repeating the last one
func scriptedRNG(colors ...domain.Color) func(int) int {
	var mu sync.Mutex
	i := 0
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		if len(colors) == 0 {
			return 0
		}
		c := colors[min(i, len(colors)-1)]
		i++
		for idx, candidate := range domain.Colors {
			if candidate == c {
				return idx
			}
		}
		return 0
	}
}

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, 0, len(r.events))
	for _, evt := range r.events {
		out = append(out, evt.Type)
	}
	return out
}

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, typ := range r.types() {
		if typ == t {
			n++
		}
	}
	return n
}

type harness struct {
	t      *testing.T
	clock  *clockwork.FakeClock
	engine *Engine
	events *recorder
	ctx    context.Context
	cancel context.CancelFunc
	runErr chan error
}

func newHarness(t *testing.T, r rules.Rules, draws ...domain.Color) *harness {
	t.Helper()

	bus := event.NewMemoryBus()
	rec := &recorder{}
	event.SubscribeAll(bus, event.GameTypes, rec.handle)

	clock := clockwork.NewFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	h := &harness{
		t:     t,
		clock: clock,
		engine: NewEngine(r,
			WithClock(clock),
			WithRNG(scriptedRNG(draws...)),
			WithBus(bus),
			WithSessionID("test-session"),
		),
		events: rec,
		ctx:    ctx,
		cancel: cancel,
		runErr: make(chan error, 1),
	}

	go func() { h.runErr <- h.engine.Run(ctx) }()
	t.Cleanup(h.stop)

	// The first snapshot is served after the first round's timers are armed
	h.snapshot()
	return h
}

func (h *harness) stop() {
	h.cancel()
	select {
	case <-h.engine.Done():
	case <-time.After(2 * time.Second):
		h.t.Error("engine did not stop")
	}
}

func (h *harness) snapshot() domain.Snapshot {
	h.t.Helper()
	snap, err := h.engine.Snapshot(h.ctx)
	require.NoError(h.t, err)
	return snap
}

// advance moves the fake clock one second at a time so every timer is observed in order
func (h *harness) advance(d time.Duration) domain.Snapshot {
	h.t.Helper()
	for d >= time.Second {
		h.clock.Advance(time.Second)
		h.snapshot()
		d -= time.Second
	}
	if d > 0 {
		h.clock.Advance(d)
	}
	return h.snapshot()
}

func (h *harness) selectColor(c domain.Color) domain.Snapshot {
	h.t.Helper()
	snap, err := h.engine.SelectColor(h.ctx, c)
	require.NoError(h.t, err)
	return snap
}

func (h *harness) togglePause() domain.Snapshot {
	h.t.Helper()
	snap, err := h.engine.TogglePause(h.ctx)
	require.NoError(h.t, err)
	return snap
}

func (h *harness) toggleAutoAdvance() domain.Snapshot {
	h.t.Helper()
	snap, err := h.engine.ToggleAutoAdvance(h.ctx)
	require.NoError(h.t, err)
	return snap
}

func (h *harness) reset() domain.Snapshot {
	h.t.Helper()
	snap, err := h.engine.ResetGame(h.ctx)
	require.NoError(h.t, err)
	return snap
}

// Full cycle with default rules: 12s selection, 2s countdown, 3s result
const (
	selection = 12 * time.Second
	countdown = 2 * time.Second
	result    = 3 * time.Second
	fullRound = selection + countdown + result
)

func manualRules() rules.Rules {
	r := rules.Default()
	r.AutoAdvance = false
	return r
}

func TestEngine_InitialState(t *testing.T) {
	h := newHarness(t, rules.Default())

	snap := h.snapshot()

	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 12, snap.TimeRemaining)
	assert.Equal(t, 1000, snap.CoinBalance)
	assert.Equal(t, 1, snap.RoundNumber)
	assert.Empty(t, snap.History)
	assert.NotNil(t, snap.History)
	assert.False(t, snap.IsPaused)
	assert.True(t, snap.AutoAdvance)
	assert.False(t, snap.CurrentSelection.IsSet())
	assert.Equal(t, "test-session", snap.SessionID)
	assert.Equal(t, []event.Type{event.RoundStarted}, h.events.types())
}

func TestEngine_SelectionCountdownTicks(t *testing.T) {
	h := newHarness(t, rules.Default())

	assert.Equal(t, 11, h.advance(time.Second).TimeRemaining)
	assert.Equal(t, 7, h.advance(4*time.Second).TimeRemaining)

	snap := h.advance(7 * time.Second)
	assert.Equal(t, domain.PhaseCountdown, snap.Phase)
	assert.Equal(t, 0, snap.TimeRemaining)
}

func TestEngine_RoundScenarios(t *testing.T) {
	tests := []struct {
		name        string
		selectColor domain.Color
		draw        domain.Color
		wantBalance int
		wantOutcome domain.Outcome
		wantHistory int
	}{
		{"win", domain.ColorRed, domain.ColorRed, 1200, domain.OutcomeWin, 1},
		{"loss", domain.ColorGreen, domain.ColorViolet, 900, domain.OutcomeLoss, 1},
		{"no selection", domain.ColorNone, domain.ColorGreen, 1000, domain.OutcomeNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, rules.Default(), tt.draw)

			if tt.selectColor.IsSet() {
				snap := h.selectColor(tt.selectColor)
				assert.Equal(t, tt.selectColor, snap.CurrentSelection)
			}

			snap := h.advance(selection)
			require.Equal(t, domain.PhaseCountdown, snap.Phase)
			assert.Equal(t, tt.selectColor, snap.CurrentSelection)
			assert.Equal(t, 1000, snap.CoinBalance, "balance only changes at resolution")

			snap = h.advance(countdown)
			require.Equal(t, domain.PhaseResult, snap.Phase)
			assert.Equal(t, tt.draw, snap.CurrentResult)
			assert.Equal(t, tt.wantBalance, snap.CoinBalance)
			assert.Equal(t, tt.wantOutcome, snap.LastOutcome)
			require.Len(t, snap.History, tt.wantHistory)
			assert.Equal(t, tt.wantHistory, snap.Stats.RoundsPlayed)

			if tt.wantHistory == 1 {
				r := snap.History[0]
				assert.Equal(t, 1, r.ID)
				assert.Equal(t, tt.selectColor, r.SelectedColor)
				assert.Equal(t, tt.draw, r.ResultColor)
				assert.Equal(t, tt.wantOutcome, r.Outcome)
				assert.Equal(t, h.clock.Now(), r.ResolvedAt)
				assert.Equal(t, tt.wantBalance-1000, snap.Stats.NetCoins)
			}

			snap = h.advance(result)
			assert.Equal(t, domain.PhaseSelection, snap.Phase)
			assert.Equal(t, 2, snap.RoundNumber)
			assert.Equal(t, 12, snap.TimeRemaining)
			assert.False(t, snap.CurrentSelection.IsSet())
			assert.False(t, snap.CurrentResult.IsSet())
			assert.Equal(t, domain.OutcomeNone, snap.LastOutcome)
			assert.Len(t, snap.History, tt.wantHistory, "history survives the next round")
			assert.Equal(t, tt.wantBalance, snap.CoinBalance)
		})
	}
}

func TestEngine_SecondSelectionIgnored(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.selectColor(domain.ColorRed)
	snap := h.selectColor(domain.ColorGreen)

	assert.Equal(t, domain.ColorRed, snap.CurrentSelection)
	assert.Equal(t, 1, h.events.count(event.SelectionMade))
}

func TestEngine_SelectionOutsideWindowIgnored(t *testing.T) {
	h := newHarness(t, rules.Default(), domain.ColorRed)

	h.advance(selection)
	snap := h.selectColor(domain.ColorRed)
	assert.Equal(t, domain.PhaseCountdown, snap.Phase)
	assert.False(t, snap.CurrentSelection.IsSet())

	h.advance(countdown)
	snap = h.selectColor(domain.ColorRed)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.False(t, snap.CurrentSelection.IsSet())
	assert.Empty(t, snap.History)
	assert.Equal(t, 1000, snap.CoinBalance)
}

func TestEngine_InvalidColorIgnored(t *testing.T) {
	h := newHarness(t, rules.Default())

	snap := h.selectColor(domain.Color("BLUE"))
	assert.False(t, snap.CurrentSelection.IsSet())

	snap = h.selectColor(domain.ColorNone)
	assert.False(t, snap.CurrentSelection.IsSet())

	snap = h.selectColor(domain.ColorViolet)
	assert.Equal(t, domain.ColorViolet, snap.CurrentSelection)
}

func TestEngine_HistoryCappedAtLimit(t *testing.T) {
	h := newHarness(t, rules.Default(), domain.ColorRed)

	for i := 0; i < 11; i++ {
		h.selectColor(domain.ColorRed)
		h.advance(fullRound)
	}

	snap := h.snapshot()
	require.Len(t, snap.History, 10)
	assert.Equal(t, 11, snap.History[0].ID, "newest first")
	assert.Equal(t, 2, snap.History[9].ID, "round 1 was dropped")
	assert.Equal(t, 12, snap.RoundNumber)
	assert.Equal(t, 1000+11*200, snap.CoinBalance)
	assert.Equal(t, 11, snap.Stats.RoundsPlayed, "stats count every round, not just the visible history")
	assert.Equal(t, 11, snap.Stats.Wins)
	assert.InDelta(t, 1.0, snap.Stats.WinRate(), 0.0001)
}

func TestEngine_BalanceNeverNegative(t *testing.T) {
	r := rules.Default()
	r.StartingBalance = 150
	h := newHarness(t, r, domain.ColorGreen)

	h.selectColor(domain.ColorRed)
	snap := h.advance(selection + countdown)
	assert.Equal(t, 50, snap.CoinBalance)

	h.advance(result)
	h.selectColor(domain.ColorRed)
	snap = h.advance(selection + countdown)
	assert.Equal(t, 0, snap.CoinBalance)
	assert.Equal(t, -150, snap.Stats.NetCoins)

	h.advance(result)
	h.selectColor(domain.ColorViolet)
	snap = h.advance(selection + countdown)
	assert.Equal(t, 0, snap.CoinBalance)
	assert.Equal(t, domain.OutcomeLoss, snap.LastOutcome)
	assert.Equal(t, 3, snap.Stats.Losses)
}

func TestEngine_Reset(t *testing.T) {
	h := newHarness(t, rules.Default(), domain.ColorRed)

	h.selectColor(domain.ColorRed)
	h.advance(fullRound)
	h.selectColor(domain.ColorGreen)
	snap := h.advance(selection + countdown)
	require.Equal(t, domain.PhaseResult, snap.Phase)
	require.Len(t, snap.History, 2)

	snap = h.reset()

	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 1000, snap.CoinBalance)
	assert.Empty(t, snap.History)
	assert.Equal(t, 1, snap.RoundNumber)
	assert.Equal(t, 12, snap.TimeRemaining)
	assert.False(t, snap.IsPaused)
	assert.Equal(t, domain.Stats{}, snap.Stats)
	assert.True(t, snap.AutoAdvance)

	// The result timer from before the reset must not fire
	snap = h.advance(result)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 1, snap.RoundNumber)
	assert.Equal(t, 9, snap.TimeRemaining)
	assert.Equal(t, 1, h.events.count(event.GameReset))
}

func TestEngine_ResetWhilePaused(t *testing.T) {
	h := newHarness(t, manualRules())

	h.advance(3 * time.Second)
	h.togglePause()

	snap := h.reset()
	assert.False(t, snap.IsPaused)
	assert.False(t, snap.AutoAdvance, "reset keeps the auto-advance setting")

	snap = h.advance(2 * time.Second)
	assert.Equal(t, 10, snap.TimeRemaining, "timers run again after reset")
}

func TestEngine_PauseResumeSelection(t *testing.T) {
	h := newHarness(t, rules.Default())

	snap := h.advance(7 * time.Second)
	require.Equal(t, 5, snap.TimeRemaining)

	snap = h.togglePause()
	assert.True(t, snap.IsPaused)

	snap = h.advance(30 * time.Second)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 5, snap.TimeRemaining, "frozen while paused")

	snap = h.togglePause()
	assert.False(t, snap.IsPaused)
	assert.Equal(t, 5, snap.TimeRemaining)

	assert.Equal(t, 4, h.advance(time.Second).TimeRemaining)
	snap = h.advance(4 * time.Second)
	assert.Equal(t, domain.PhaseCountdown, snap.Phase)
}

func TestEngine_PausePreservesSubSecondRemainder(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.advance(7*time.Second + 500*time.Millisecond)
	h.togglePause()
	h.advance(10 * time.Second)
	h.togglePause()

	snap := h.advance(4 * time.Second)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 1, snap.TimeRemaining)

	snap = h.advance(500 * time.Millisecond)
	assert.Equal(t, domain.PhaseCountdown, snap.Phase)
}

func TestEngine_PauseDuringCountdown(t *testing.T) {
	h := newHarness(t, rules.Default(), domain.ColorRed)

	h.selectColor(domain.ColorRed)
	h.advance(selection + time.Second)
	h.togglePause()

	snap := h.advance(10 * time.Second)
	assert.Equal(t, domain.PhaseCountdown, snap.Phase)
	assert.Equal(t, 1000, snap.CoinBalance)

	h.togglePause()
	snap = h.advance(time.Second)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.Equal(t, 1200, snap.CoinBalance)
}

func TestEngine_PauseDuringResult(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.advance(selection + countdown + time.Second)
	h.togglePause()

	snap := h.advance(10 * time.Second)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.Equal(t, 1, snap.RoundNumber)

	h.togglePause()
	snap = h.advance(2 * time.Second)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 2, snap.RoundNumber)
}

func TestEngine_SelectWhilePaused(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.togglePause()
	snap := h.selectColor(domain.ColorGreen)

	assert.Equal(t, domain.ColorGreen, snap.CurrentSelection)
	assert.True(t, snap.IsPaused)
}

func TestEngine_AutoAdvanceOffParksResult(t *testing.T) {
	h := newHarness(t, manualRules())

	snap := h.advance(fullRound)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.Equal(t, 1, h.events.count(event.RoundParked))

	snap = h.advance(20 * time.Second)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.Equal(t, 1, snap.RoundNumber)

	snap = h.toggleAutoAdvance()
	assert.True(t, snap.AutoAdvance)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 2, snap.RoundNumber)
	assert.Equal(t, 12, snap.TimeRemaining)
}

func TestEngine_AutoAdvanceOnDuringPendingResult(t *testing.T) {
	h := newHarness(t, manualRules())

	snap := h.advance(selection + countdown + time.Second)
	require.Equal(t, domain.PhaseResult, snap.Phase)

	snap = h.toggleAutoAdvance()
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 2, snap.RoundNumber)

	// The old result timer is gone, so round 2 runs its full window
	snap = h.advance(2 * time.Second)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 10, snap.TimeRemaining)
}

func TestEngine_AutoAdvanceOffDuringResult(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.advance(selection + countdown + time.Second)
	snap := h.toggleAutoAdvance()
	assert.False(t, snap.AutoAdvance)
	assert.Equal(t, domain.PhaseResult, snap.Phase)

	snap = h.advance(5 * time.Second)
	assert.Equal(t, domain.PhaseResult, snap.Phase)
	assert.Equal(t, 1, h.events.count(event.RoundParked))
}

func TestEngine_AutoAdvanceToggleWhilePaused(t *testing.T) {
	h := newHarness(t, manualRules())

	h.advance(fullRound)
	h.togglePause()

	snap := h.toggleAutoAdvance()
	assert.True(t, snap.AutoAdvance)
	assert.Equal(t, domain.PhaseResult, snap.Phase, "only the flag flips while paused")
	assert.True(t, snap.IsPaused)

	snap = h.togglePause()
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 2, snap.RoundNumber)
}

func TestEngine_AutoAdvanceToggleOutsideResult(t *testing.T) {
	h := newHarness(t, rules.Default())

	snap := h.toggleAutoAdvance()
	assert.False(t, snap.AutoAdvance)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)

	snap = h.toggleAutoAdvance()
	assert.True(t, snap.AutoAdvance)
	assert.Equal(t, domain.PhaseSelection, snap.Phase)
	assert.Equal(t, 1, snap.RoundNumber)
}

func TestEngine_EventSequence(t *testing.T) {
	r := rules.Default()
	r.SelectionSeconds = 2
	h := newHarness(t, r, domain.ColorViolet)

	h.selectColor(domain.ColorViolet)
	h.advance(2*time.Second + countdown + result)

	assert.Equal(t, []event.Type{
		event.RoundStarted,
		event.SelectionMade,
		event.RoundTick,
		event.RoundCountdown,
		event.RoundResolved,
		event.RoundStarted,
	}, h.events.types())

	h.events.mu.Lock()
	resolved := h.events.events[4]
	h.events.mu.Unlock()
	payload, err := event.DecodePayload[domain.RoundEventPayload](resolved.Payload)
	require.NoError(t, err)
	require.NotNil(t, payload.Resolved)
	assert.Equal(t, domain.OutcomeWin, payload.Resolved.Outcome)
	assert.Equal(t, "test-session", resolved.SessionID())
}

func TestEngine_StoppedEngine(t *testing.T) {
	h := newHarness(t, rules.Default())

	h.stop()

	_, err := h.engine.Snapshot(context.Background())
	assert.ErrorIs(t, err, domain.ErrEngineStopped)
	assert.NoError(t, <-h.runErr)
	assert.Equal(t, 1, h.events.count(event.SessionClosed))

	assert.ErrorIs(t, h.engine.Run(context.Background()), ErrAlreadyRunning)
}

func TestEngine_CommandContextCancelled(t *testing.T) {
	e := NewEngine(rules.Default(), WithClock(clockwork.NewFakeClock()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Fill the command buffer so the send blocks on ctx
	for i := 0; i < commandBufferSize; i++ {
		e.cmds <- command{kind: cmdSnapshot, reply: make(chan domain.Snapshot, 1)}
	}

	_, err := e.Snapshot(ctx)
	assert.ErrorIs(t, err, domain.ErrEngineStopped)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		clock := clockwork.NewFakeClock()
		e := NewEngine(rules.Default(), WithClock(clock))
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			_ = e.Run(ctx)
			close(done)
		}()

		_, err := e.SelectColor(ctx, domain.ColorRed)
		require.NoError(t, err)
		clock.Advance(time.Second)
		_, err = e.TogglePause(ctx)
		require.NoError(t, err)

		cancel()
		<-done
	})
}

func TestDrawColor_Uniform(t *testing.T) {
	e := NewEngine(rules.Default())
	counts := map[domain.Color]int{}

	const draws = 10000
	for i := 0; i < draws; i++ {
		c := e.drawColor()
		require.True(t, c.Valid())
		counts[c]++
	}

	require.Len(t, counts, 3)
	for _, c := range domain.Colors {
		// Expected 3333 with a standard deviation near 47
		assert.InDelta(t, draws/3, counts[c], 300, "color %s drawn %d times", c, counts[c])
	}
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, 0, ceilSeconds(0))
	assert.Equal(t, 0, ceilSeconds(-time.Second))
	assert.Equal(t, 1, ceilSeconds(time.Millisecond))
	assert.Equal(t, 5, ceilSeconds(5*time.Second))
	assert.Equal(t, 6, ceilSeconds(5*time.Second+time.Nanosecond))
}
