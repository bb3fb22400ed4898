package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ColorRush_Go/internal/logger"
)

// URLParamSessionID is the chi route parameter holding the session ID
const URLParamSessionID = "id"

// maxBodyBytes caps request bodies; the largest legal body is a single color
const maxBodyBytes = 1 << 10

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgRequestDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// sessionID reads the session ID route parameter. It writes a 400 and returns false when absent.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, URLParamSessionID)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSessionID)
		return "", false
	}
	return id, true
}

// SessionContext tags the request context with the route's session ID for logging
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, URLParamSessionID); id != "" {
			r = r.WithContext(logger.WithSessionID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
