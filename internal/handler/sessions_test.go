package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/mocks"
)

const testSessionID = "11111111-2222-3333-4444-555555555555"

func newTestRouter(svc *mocks.MockSessionService) http.Handler {
	h := NewSessionHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/v1/sessions", h.HandleCreate())
	r.Get("/api/v1/rules", h.HandleRules())
	r.Route("/api/v1/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGet())
		r.Delete("/", h.HandleDelete())
		r.Post("/select", h.HandleSelect())
		r.Post("/pause", h.HandlePause())
		r.Post("/reset", h.HandleReset())
		r.Post("/autoplay", h.HandleAutoplay())
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionPath(suffix string) string {
	return "/api/v1/sessions/" + testSessionID + suffix
}

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		SessionID:     testSessionID,
		Phase:         domain.PhaseSelection,
		TimeRemaining: 12,
		CoinBalance:   1000,
		RoundNumber:   1,
		History:       []domain.Round{},
	}
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) domain.Snapshot {
	t.Helper()
	var snap domain.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	return snap
}

func TestHandleCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Create", mock.Anything).Return(testSnapshot(), nil)

		rec := do(t, newTestRouter(svc), http.MethodPost, "/api/v1/sessions", nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "/api/v1/sessions/"+testSessionID, rec.Header().Get("Location"))
		snap := decodeSnapshot(t, rec)
		assert.Equal(t, testSessionID, snap.SessionID)
		assert.Equal(t, domain.PhaseSelection, snap.Phase)
	})

	t.Run("Session Limit", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Create", mock.Anything).
			Return(domain.Snapshot{}, fmt.Errorf("%w: 10 active", domain.ErrSessionLimit))

		rec := do(t, newTestRouter(svc), http.MethodPost, "/api/v1/sessions", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgSessionLimit)
	})
}

func TestHandleGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Snapshot", mock.Anything, testSessionID).Return(testSnapshot(), nil)

		rec := do(t, newTestRouter(svc), http.MethodGet, sessionPath(""), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 12, decodeSnapshot(t, rec).TimeRemaining)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Snapshot", mock.Anything, testSessionID).
			Return(domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, testSessionID))

		rec := do(t, newTestRouter(svc), http.MethodGet, sessionPath(""), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgSessionNotFound)
	})

	t.Run("Stopped Engine", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Snapshot", mock.Anything, testSessionID).Return(domain.Snapshot{}, domain.ErrEngineStopped)

		rec := do(t, newTestRouter(svc), http.MethodGet, sessionPath(""), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgGameUnavailable)
	})
}

func TestHandleDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Close", mock.Anything, testSessionID).Return(nil)

		rec := do(t, newTestRouter(svc), http.MethodDelete, sessionPath(""), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Unknown Session", func(t *testing.T) {
		svc := mocks.NewMockSessionService(t)
		svc.On("Close", mock.Anything, testSessionID).Return(domain.ErrSessionNotFound)

		rec := do(t, newTestRouter(svc), http.MethodDelete, sessionPath(""), nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleSelect(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockSessionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Valid Color",
			body: SelectColorRequest{Color: "GREEN"},
			setupMock: func(m *mocks.MockSessionService) {
				snap := testSnapshot()
				snap.CurrentSelection = domain.ColorGreen
				m.On("SelectColor", mock.Anything, testSessionID, domain.ColorGreen).Return(snap, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"current_selection":"GREEN"`,
		},
		{
			name:           "Unknown Color",
			body:           SelectColorRequest{Color: "BLUE"},
			setupMock:      func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidColor,
		},
		{
			name:           "Lowercase Color",
			body:           SelectColorRequest{Color: "red"},
			setupMock:      func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"color"`,
		},
		{
			name:           "Missing Color",
			body:           map[string]string{},
			setupMock:      func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:           "Invalid JSON",
			body:           "{not json",
			setupMock:      func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown Field",
			body:           `{"color":"RED","stake":500}`,
			setupMock:      func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Outside Window Returns Unchanged Snapshot",
			body: SelectColorRequest{Color: "RED"},
			setupMock: func(m *mocks.MockSessionService) {
				snap := testSnapshot()
				snap.Phase = domain.PhaseCountdown
				m.On("SelectColor", mock.Anything, testSessionID, domain.ColorRed).Return(snap, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"phase":"COUNTDOWN"`,
		},
		{
			name: "Unknown Session",
			body: SelectColorRequest{Color: "RED"},
			setupMock: func(m *mocks.MockSessionService) {
				m.On("SelectColor", mock.Anything, testSessionID, domain.ColorRed).
					Return(domain.Snapshot{}, domain.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSessionService(t)
			tt.setupMock(svc)

			rec := do(t, newTestRouter(svc), http.MethodPost, sessionPath("/select"), tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleToggles(t *testing.T) {
	tests := []struct {
		path   string
		method string
		mutate func(*domain.Snapshot)
		expect string
	}{
		{"/pause", "TogglePause", func(s *domain.Snapshot) { s.IsPaused = true }, `"is_paused":true`},
		{"/reset", "ResetGame", func(s *domain.Snapshot) { s.RoundNumber = 1 }, `"round_number":1`},
		{"/autoplay", "ToggleAutoAdvance", func(s *domain.Snapshot) { s.AutoAdvance = true }, `"auto_advance":true`},
	}

	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/"), func(t *testing.T) {
			svc := mocks.NewMockSessionService(t)
			snap := testSnapshot()
			tt.mutate(&snap)
			svc.On(tt.method, mock.Anything, testSessionID).Return(snap, nil)

			rec := do(t, newTestRouter(svc), http.MethodPost, sessionPath(tt.path), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expect)
		})
	}
}

func TestHandleRules(t *testing.T) {
	svc := mocks.NewMockSessionService(t)
	svc.On("Rules").Return(rules.Default())

	rec := do(t, newTestRouter(svc), http.MethodGet, "/api/v1/rules", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got rules.Rules
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, rules.Default(), got)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("wrap: %w", domain.ErrSessionNotFound), http.StatusNotFound},
		{domain.ErrInvalidColor, http.StatusBadRequest},
		{domain.ErrSessionLimit, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: %w", domain.ErrEngineStopped, assert.AnError), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.NotContains(t, msg, assert.AnError.Error())
	}
}
