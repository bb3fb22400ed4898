package rules

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

// Rules are the fixed constants shared by every round of a game
type Rules struct {
	StartingBalance  int  `yaml:"starting_balance" json:"starting_balance" validate:"gte=0"`
	BetAmount        int  `yaml:"bet_amount" json:"bet_amount" validate:"gte=1"`
	WinAmount        int  `yaml:"win_amount" json:"win_amount" validate:"gte=1"`
	SelectionSeconds int  `yaml:"selection_seconds" json:"selection_seconds" validate:"gte=1,lte=300"`
	CountdownSeconds int  `yaml:"countdown_seconds" json:"countdown_seconds" validate:"gte=1,lte=60"`
	ResultSeconds    int  `yaml:"result_seconds" json:"result_seconds" validate:"gte=1,lte=60"`
	HistoryLimit     int  `yaml:"history_limit" json:"history_limit" validate:"gte=1,lte=100"`
	AutoAdvance      bool `yaml:"auto_advance" json:"auto_advance"`
}

var validate = validator.New()

// Default returns the standard game rules
func Default() Rules {
	return Rules{
		StartingBalance:  DefaultStartingBalance,
		BetAmount:        DefaultBetAmount,
		WinAmount:        DefaultWinAmount,
		SelectionSeconds: DefaultSelectionSeconds,
		CountdownSeconds: DefaultCountdownSeconds,
		ResultSeconds:    DefaultResultSeconds,
		HistoryLimit:     DefaultHistoryLimit,
		AutoAdvance:      DefaultAutoAdvance,
	}
}

// Validate checks the struct constraints
func (r Rules) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRules, err)
	}
	return nil
}

// SelectionWindow is how long the player may pick a color
func (r Rules) SelectionWindow() time.Duration {
	return time.Duration(r.SelectionSeconds) * time.Second
}

// CountdownDelay is the pause between the selection closing and the draw
func (r Rules) CountdownDelay() time.Duration {
	return time.Duration(r.CountdownSeconds) * time.Second
}

// ResultDelay is how long the result is shown before the next round
func (r Rules) ResultDelay() time.Duration {
	return time.Duration(r.ResultSeconds) * time.Second
}
