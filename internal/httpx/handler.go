package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skinovaai/skinova/pkg/api"
)

// HandlerFunc is an HTTP handler that returns an error instead of writing
// error responses inline. Returned errors are rendered centrally by Wrap.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap converts a HandlerFunc to a standard http.HandlerFunc, rendering any
// returned error as a JSON body with a "message" field.
func Wrap(logger *slog.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(logger, w, err)
		}
	}
}

// WriteError renders err as a JSON error response. *HTTPError values keep
// their status and message; anything else becomes a 500 with a generic
// message, with the real error kept in the logs.
func WriteError(logger *slog.Logger, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = httpErr.Message
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", slog.Any("error", err))
	} else {
		logger.Debug("request rejected",
			slog.Int("status", code),
			slog.String("message", message),
		)
	}

	JSON(w, code, api.Error{Message: message})
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Decode parses the request body as JSON into v.
// Unknown fields are rejected to surface client bugs early.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return ErrBadRequest("invalid request body", WithError(err))
	}
	return nil
}

// Param returns the named URL parameter from the chi route context.
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
