package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/sse"
)

type fakeCommander struct {
	mu    sync.Mutex
	snap  domain.Snapshot
	calls []string
}

func (f *fakeCommander) record(call string) domain.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.snap
}

func (f *fakeCommander) Snapshot(_ context.Context, id string) (domain.Snapshot, error) {
	if id != f.snap.SessionID {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return f.record("snapshot"), nil
}

func (f *fakeCommander) SelectColor(_ context.Context, _ string, c domain.Color) (domain.Snapshot, error) {
	f.mu.Lock()
	f.snap.CurrentSelection = c
	f.mu.Unlock()
	return f.record("select"), nil
}

func (f *fakeCommander) TogglePause(context.Context, string) (domain.Snapshot, error) {
	f.mu.Lock()
	f.snap.IsPaused = !f.snap.IsPaused
	f.mu.Unlock()
	return f.record("pause"), nil
}

func (f *fakeCommander) ResetGame(context.Context, string) (domain.Snapshot, error) {
	return f.record("reset"), nil
}

func (f *fakeCommander) ToggleAutoAdvance(context.Context, string) (domain.Snapshot, error) {
	return f.record("autoplay"), nil
}

type message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id"`
	Payload   json.RawMessage `json:"payload"`
}

func setup(t *testing.T) (*sse.Hub, *fakeCommander, *websocket.Conn) {
	t.Helper()

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	cmd := &fakeCommander{snap: domain.Snapshot{SessionID: "s1", Phase: domain.PhaseSelection, TimeRemaining: 12}}

	r := chi.NewRouter()
	r.Get("/sessions/{id}/ws", NewHandler(hub, cmd, []string{"*"}).ServeHTTP)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/s1/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return hub, cmd, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHandler_InitialSnapshot(t *testing.T) {
	_, _, conn := setup(t)

	msg := readMessage(t, conn)

	assert.Equal(t, MessageTypeSnapshot, msg.Type)
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(msg.Payload, &snap))
	assert.Equal(t, 12, snap.TimeRemaining)
}

func TestHandler_Commands(t *testing.T) {
	_, cmd, conn := setup(t)
	readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Action: ActionSelect, Color: domain.ColorViolet}))
	msg := readMessage(t, conn)
	require.Equal(t, MessageTypeResult, msg.Type)
	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(msg.Payload, &snap))
	assert.Equal(t, domain.ColorViolet, snap.CurrentSelection)

	require.NoError(t, conn.WriteJSON(ClientMessage{Action: ActionPause}))
	msg = readMessage(t, conn)
	require.NoError(t, json.Unmarshal(msg.Payload, &snap))
	assert.True(t, snap.IsPaused)

	require.NoError(t, conn.WriteJSON(ClientMessage{Action: ActionReset}))
	assert.Equal(t, MessageTypeResult, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteJSON(ClientMessage{Action: ActionAutoplay}))
	assert.Equal(t, MessageTypeResult, readMessage(t, conn).Type)

	cmd.mu.Lock()
	defer cmd.mu.Unlock()
	assert.Equal(t, []string{"snapshot", "select", "pause", "reset", "autoplay"}, cmd.calls)
}

func TestHandler_InvalidCommands(t *testing.T) {
	tests := []struct {
		name string
		msg  ClientMessage
		want string
	}{
		{"invalid color", ClientMessage{Action: ActionSelect, Color: "BLUE"}, domain.ErrMsgInvalidColor},
		{"unknown action", ClientMessage{Action: "bet-everything"}, "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, conn := setup(t)
			readMessage(t, conn)

			require.NoError(t, conn.WriteJSON(tt.msg))
			msg := readMessage(t, conn)

			assert.Equal(t, MessageTypeError, msg.Type)
			var payload ErrorPayload
			require.NoError(t, json.Unmarshal(msg.Payload, &payload))
			assert.Contains(t, payload.Error, tt.want)
		})
	}
}

func TestHandler_ForwardsHubEvents(t *testing.T) {
	hub, _, conn := setup(t)
	readMessage(t, conn)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("s2", domain.EventTypeRoundTick, nil)
	hub.Broadcast("s1", domain.EventTypeRoundResolved, domain.RoundEventPayload{})
	assert.Equal(t, domain.EventTypeRoundResolved, readMessage(t, conn).Type)

	hub.Broadcast("s1", domain.EventTypeSessionClosed, nil)
	assert.Equal(t, domain.EventTypeSessionClosed, readMessage(t, conn).Type)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestHandler_UnknownSession(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	r := chi.NewRouter()
	r.Get("/sessions/{id}/ws", NewHandler(hub, &fakeCommander{snap: domain.Snapshot{SessionID: "s1"}}, nil).ServeHTTP)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/nope/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, hub.ClientCount(), "a refused connection must not stay registered")
}

func TestNewHandler_CheckOrigin(t *testing.T) {
	h := NewHandler(nil, nil, []string{"https://play.example"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, h.upgrader.CheckOrigin(req), "same-origin requests carry no Origin header")

	req.Header.Set("Origin", "https://play.example")
	assert.True(t, h.upgrader.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, h.upgrader.CheckOrigin(req))
}
