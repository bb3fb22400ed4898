package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload recovers a typed payload, usually a domain.RoundEventPayload, from an Event.
// Engines publish the struct itself so the assertion is the normal path; payloads that went
// through JSON (replayed frames, external clients) arrive as maps and are re-marshalled.
func DecodePayload[T any](payload interface{}) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", payload, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode payload as %T: %w", out, err)
	}
	return out, nil
}
