package sse

// ConnectedPayload is the payload of the connected event
type ConnectedPayload struct {
	ClientID  string   `json:"client_id"`
	SessionID string   `json:"session_id"`
	Filters   []string `json:"filters,omitempty"`
}
