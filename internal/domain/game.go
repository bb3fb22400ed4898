package domain

import (
	"slices"
	"time"
)

// Phase is the stage of the round lifecycle
type Phase string

const (
	PhaseSelection Phase = "SELECTION"
	PhaseCountdown Phase = "COUNTDOWN"
	PhaseResult    Phase = "RESULT"
)

// Next returns the phase that follows p. The cycle never skips a phase.
func (p Phase) Next() Phase {
	switch p {
	case PhaseSelection:
		return PhaseCountdown
	case PhaseCountdown:
		return PhaseResult
	default:
		return PhaseSelection
	}
}

func (p Phase) String() string {
	return string(p)
}

// Stats tallies resolved rounds since the last reset
type Stats struct {
	RoundsPlayed int `json:"rounds_played"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	NetCoins     int `json:"net_coins"`
}

// WinRate returns wins / rounds played, or 0 before the first round
func (s Stats) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed)
}

// Snapshot is a read-only copy of a game's state handed to the presentation layer
type Snapshot struct {
	SessionID        string    `json:"session_id,omitempty"`
	Phase            Phase     `json:"phase"`
	TimeRemaining    int       `json:"time_remaining"`
	CoinBalance      int       `json:"coin_balance"`
	CurrentSelection Color     `json:"current_selection,omitempty"`
	CurrentResult    Color     `json:"current_result,omitempty"`
	LastOutcome      Outcome   `json:"last_outcome,omitempty"`
	History          []Round   `json:"history"`
	RoundNumber      int       `json:"round_number"`
	IsPaused         bool      `json:"is_paused"`
	AutoAdvance      bool      `json:"auto_advance"`
	Stats            Stats     `json:"stats"`
	TakenAt          time.Time `json:"taken_at"`
}

// Clone returns a deep copy so the history slice is not shared
func (s Snapshot) Clone() Snapshot {
	s.History = slices.Clone(s.History)
	if s.History == nil {
		s.History = []Round{}
	}
	return s
}
