package domain

import "time"

// Outcome is the result of comparing the selection with the drawn color
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// OutcomeFor returns WIN when both colors match and LOSS otherwise
func OutcomeFor(selected, result Color) Outcome {
	if selected == result {
		return OutcomeWin
	}
	return OutcomeLoss
}

// Round is a resolved round. It is never modified after resolution.
type Round struct {
	ID            int       `json:"id"`
	SelectedColor Color     `json:"selected_color"`
	ResultColor   Color     `json:"result_color"`
	Outcome       Outcome   `json:"outcome"`
	ResolvedAt    time.Time `json:"resolved_at"`
}

// IsWin reports whether the round was won
func (r Round) IsWin() bool {
	return r.Outcome == OutcomeWin
}
