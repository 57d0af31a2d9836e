package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/finadvise/auth-service/internal/domain"
	"github.com/finadvise/auth-service/internal/logger"
)

// ErrorBody is the only error shape clients ever see.
type ErrorBody struct {
	Message string `json:"message"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 response with the payload at the top level.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteError converts a domain error into the wire contract's
// {"message": ...} body. Internal kinds and non-domain errors are masked to
// "Server error"; the full cause goes to the log only.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Server error"

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		message = de.Message
		if de.Kind == domain.KindInternal || de.Kind == domain.KindInfrastructure {
			message = "Server error"
			l := logger.WithCtx(r.Context())
			l.Error().Err(de).Str("code", de.Code).Msg("request failed")
		}
	} else {
		l := logger.WithCtx(r.Context())
		l.Error().Err(err).Msg("request failed")
	}

	WriteJSON(w, status, ErrorBody{Message: message})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	case domain.KindInfrastructure, domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a JSON request body into dst, rejecting trailing data.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		return err
	}

	// Disallow trailing data: {}{}
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	return errors.New("multiple JSON values")
}
