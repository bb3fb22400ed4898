package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgSessionLimit    = "session limit reached"

	// Engine errors
	ErrMsgEngineStopped = "round engine is stopped"

	// Input errors
	ErrMsgInvalidColor = "invalid color"
	ErrMsgInvalidRules = "invalid game rules"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrSessionLimit    = errors.New(ErrMsgSessionLimit)

	ErrEngineStopped = errors.New(ErrMsgEngineStopped)

	ErrInvalidColor = errors.New(ErrMsgInvalidColor)
	ErrInvalidRules = errors.New(ErrMsgInvalidRules)
)
