package rules

// Defaults taken from the color game page
const (
	DefaultStartingBalance  = 1000
	DefaultBetAmount        = 100
	DefaultWinAmount        = 200
	DefaultSelectionSeconds = 12
	DefaultCountdownSeconds = 2
	DefaultResultSeconds    = 3
	DefaultHistoryLimit     = 10
	DefaultAutoAdvance      = true
)

// Log messages
const (
	LogMsgRulesFileMissing = "Rules file not found, using defaults"
	LogMsgRulesLoaded      = "Game rules loaded"
)
