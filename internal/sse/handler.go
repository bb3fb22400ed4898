package sse

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ColorRush_Go/internal/domain"
)

// SnapshotSource returns the current state of a session
type SnapshotSource interface {
	Snapshot(ctx context.Context, id string) (domain.Snapshot, error)
}

// Handler returns an HTTP handler streaming one session's round events
// @Summary Session event stream
// @Description Server-sent events: connected, snapshot, then every round event of the session until it closes.
// @Tags streams
// @Produce text/event-stream
// @Param id path string true "Session ID"
// @Param types query string false "Comma separated event types to receive"
// @Success 200 {string} string "text/event-stream"
// @Failure 404 {string} string "Session not found"
// @Router /api/v1/sessions/{id}/events [get]
func Handler(hub *Hub, source SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, URLParamSessionID)

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		// Register before reading state so nothing published in between is missed
		client := hub.Register(sessionID, eventTypes)
		snap, err := source.Snapshot(r.Context(), sessionID)
		if err != nil {
			hub.Unregister(client.ID)
			http.Error(w, err.Error(), SnapshotErrorStatus(err))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"session_id", sessionID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"session_id", sessionID,
				"total_clients", hub.ClientCount())
		}()

		write := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		now := time.Now().Unix()
		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: now,
			Payload:   ConnectedPayload{ClientID: client.ID, SessionID: sessionID, Filters: eventTypes},
		}) {
			return
		}
		if !write(Event{Type: EventTypeSnapshot, SessionID: sessionID, Timestamp: now, Payload: snap}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if Superseded(event, snap) {
					continue
				}
				if !write(event) {
					return
				}
				if event.Type == domain.EventTypeSessionClosed {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

// SnapshotErrorStatus maps a failed initial snapshot to an HTTP status
func SnapshotErrorStatus(err error) int {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusServiceUnavailable
}

// Superseded reports whether a queued round event carries state older than
// the snapshot already sent to the client.
func Superseded(event Event, sent domain.Snapshot) bool {
	p, ok := event.Payload.(domain.RoundEventPayload)
	return ok && p.Snapshot.TakenAt.Before(sent.TakenAt)
}
