package middleware

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/pkg/api"
)

// recoverStackSize is the maximum captured stack trace size in bytes.
const recoverStackSize = 4096

// Recover turns handler panics into 500 responses. The panic value and a
// truncated stack trace go to the logs; the client sees a generic message.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)

					logger.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("request_id", GetRequestID(r.Context())),
						slog.String("stack", string(stack[:n])),
					)
					httpx.JSON(w, http.StatusInternalServerError, api.Error{Message: "internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
