package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/logger"
	"github.com/osse101/ColorRush_Go/internal/session"
)

// SelectColorRequest is the body of the select endpoint
type SelectColorRequest struct {
	Color string `json:"color" validate:"required,color"`
}

// SessionHandler serves the game session endpoints
type SessionHandler struct {
	sessions session.Service
}

// NewSessionHandler creates a handler over the session service
func NewSessionHandler(sessions session.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// HandleCreate starts a new game and returns its first snapshot
// @Summary Create session
// @Description Starts a new game engine and returns its first snapshot. The Location header points at the session.
// @Tags sessions
// @Produce json
// @Success 201 {object} domain.Snapshot
// @Failure 503 {object} ErrorResponse "Session limit reached or shutting down"
// @Router /api/v1/sessions [post]
func (h *SessionHandler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := h.sessions.Create(r.Context())
		if err != nil {
			h.fail(w, r, "", err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgSessionCreated, "session_id", snap.SessionID)
		w.Header().Set("Location", "/api/v1/sessions/"+snap.SessionID)
		respondJSON(w, http.StatusCreated, snap)
	}
}

// HandleGet returns the current snapshot
// @Summary Get session snapshot
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) HandleGet() http.HandlerFunc {
	return h.command(h.sessions.Snapshot)
}

// HandleDelete stops the session's engine
// @Summary Close session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}
		if err := h.sessions.Close(r.Context(), id); err != nil {
			h.fail(w, r, id, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleSelect locks in a color. A selection outside the window is ignored and the snapshot is returned unchanged.
// @Summary Select color
// @Description Locks in the player's color for the current round. Ignored outside the selection window or when a color is already chosen.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SelectColorRequest true "Color to bet on"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/select [post]
func (h *SessionHandler) HandleSelect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req SelectColorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "select color"); err != nil {
			return
		}

		snap, err := h.sessions.SelectColor(r.Context(), id, domain.Color(req.Color))
		if err != nil {
			h.fail(w, r, id, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandlePause toggles pause
// @Summary Toggle pause
// @Description Pauses or resumes every timer; remaining time is preserved.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/pause [post]
func (h *SessionHandler) HandlePause() http.HandlerFunc {
	return h.command(h.sessions.TogglePause)
}

// HandleReset restarts the game at round 1
// @Summary Reset game
// @Description Restores the starting balance, clears history and starts round 1.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) HandleReset() http.HandlerFunc {
	return h.command(h.sessions.ResetGame)
}

// HandleAutoplay toggles auto-advance
// @Summary Toggle auto-advance
// @Description Flips auto-advance. Turning it on while a result is shown starts the next round.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/autoplay [post]
func (h *SessionHandler) HandleAutoplay() http.HandlerFunc {
	return h.command(h.sessions.ToggleAutoAdvance)
}

// HandleRules returns the rules every session plays by
// @Summary Game rules
// @Tags game
// @Produce json
// @Success 200 {object} rules.Rules
// @Router /api/v1/rules [get]
func (h *SessionHandler) HandleRules() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, h.sessions.Rules())
	}
}

// command adapts a bodiless session operation to a handler returning the resulting snapshot
func (h *SessionHandler) command(op func(ctx context.Context, id string) (domain.Snapshot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionID(w, r)
		if !ok {
			return
		}
		snap, err := op(r.Context(), id)
		if err != nil {
			h.fail(w, r, id, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

func (h *SessionHandler) fail(w http.ResponseWriter, r *http.Request, id string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgCommandFailed, "session_id", id, "status", status, "error", err)
	} else {
		log.Debug(LogMsgCommandFailed, "session_id", id, "status", status, "error", err)
	}
	respondError(w, status, msg)
}
