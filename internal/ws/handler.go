package ws

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/sse"
)

// Commander is the part of the session service the socket drives
type Commander interface {
	Snapshot(ctx context.Context, id string) (domain.Snapshot, error)
	SelectColor(ctx context.Context, id string, color domain.Color) (domain.Snapshot, error)
	TogglePause(ctx context.Context, id string) (domain.Snapshot, error)
	ResetGame(ctx context.Context, id string) (domain.Snapshot, error)
	ToggleAutoAdvance(ctx context.Context, id string) (domain.Snapshot, error)
}

// ClientMessage is a command sent by the browser
type ClientMessage struct {
	Action string       `json:"action"`
	Color  domain.Color `json:"color,omitempty"`
}

// ErrorPayload is the payload of a command.error message
type ErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

// Handler upgrades a request to a WebSocket that streams one session's events
// and accepts the game commands
type Handler struct {
	hub      *sse.Hub
	sessions Commander
	upgrader websocket.Upgrader
}

// NewHandler creates a WebSocket handler. A "*" entry in allowedOrigins accepts any origin.
func NewHandler(hub *sse.Hub, sessions Commander, allowedOrigins []string) *Handler {
	return &Handler{
		hub:      hub,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, URLParamSessionID)

	// Register before reading state so nothing published in between is missed
	client := h.hub.Register(sessionID, nil)
	defer h.hub.Unregister(client.ID)

	snap, err := h.sessions.Snapshot(r.Context(), sessionID)
	if err != nil {
		http.Error(w, err.Error(), sse.SnapshotErrorStatus(err))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn(LogMsgUpgradeFailed, "session_id", sessionID, "error", err)
		return
	}
	defer conn.Close()

	slog.Info(LogMsgConnected, "client_id", client.ID, "session_id", sessionID)

	// The request context is not cancelled for hijacked connections
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outbox := make(chan sse.Event, outboxSize)
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		h.readPump(ctx, conn, sessionID, outbox)
	}()

	err = h.writePump(conn, client, snap, outbox, readDone)
	slog.Info(LogMsgDisconnected, "client_id", client.ID, "session_id", sessionID, "error", err)
}

// writePump is the only writer on conn
func (h *Handler) writePump(conn *websocket.Conn, client *sse.Client, snap domain.Snapshot,
	outbox <-chan sse.Event, readDone <-chan struct{}) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(evt sse.Event) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(evt)
	}

	if err := write(newMessage(snap.SessionID, MessageTypeSnapshot, snap)); err != nil {
		return err
	}

	for {
		select {
		case <-readDone:
			return nil

		case evt, ok := <-client.EventChannel:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
					time.Now().Add(writeWait))
				return nil
			}
			if sse.Superseded(evt, snap) {
				continue
			}
			if err := write(evt); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return err
			}
			if evt.Type == domain.EventTypeSessionClosed {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(writeWait))
				return nil
			}

		case evt := <-outbox:
			if err := write(evt); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return err
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

// readPump applies client commands until the connection fails
func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, sessionID string, outbox chan<- sse.Event) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug(LogMsgReadError, "session_id", sessionID, "error", err)
			}
			return
		}

		reply := h.apply(ctx, sessionID, msg)
		select {
		case outbox <- reply:
		default:
			slog.Warn(LogMsgOutboxFull, "session_id", sessionID, "action", msg.Action)
		}
	}
}

func (h *Handler) apply(ctx context.Context, sessionID string, msg ClientMessage) sse.Event {
	var (
		snap domain.Snapshot
		err  error
	)

	switch msg.Action {
	case ActionSelect:
		if !msg.Color.Valid() {
			err = fmt.Errorf("%w: %q", domain.ErrInvalidColor, msg.Color)
			break
		}
		snap, err = h.sessions.SelectColor(ctx, sessionID, msg.Color)
	case ActionPause:
		snap, err = h.sessions.TogglePause(ctx, sessionID)
	case ActionReset:
		snap, err = h.sessions.ResetGame(ctx, sessionID)
	case ActionAutoplay:
		snap, err = h.sessions.ToggleAutoAdvance(ctx, sessionID)
	default:
		err = fmt.Errorf("unknown action %q", msg.Action)
	}

	if err != nil {
		return newMessage(sessionID, MessageTypeError, ErrorPayload{Action: msg.Action, Error: err.Error()})
	}
	return newMessage(sessionID, MessageTypeResult, snap)
}

func newMessage(sessionID, msgType string, payload interface{}) sse.Event {
	return sse.Event{
		Type:      msgType,
		SessionID: sessionID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}
