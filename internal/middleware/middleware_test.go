package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/token"
	"github.com/skinovaai/skinova/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates when absent", func(t *testing.T) {
		t.Parallel()
		var captured string
		h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middleware.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, captured)
		assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("preserves upstream id", func(t *testing.T) {
		t.Parallel()
		var captured string
		h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middleware.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "upstream-123")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "upstream-123", captured)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	h := middleware.Recover(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("allowed origin echoed", func(t *testing.T) {
		t.Parallel()
		h := middleware.CORS([]string{"https://app.example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no header", func(t *testing.T) {
		t.Parallel()
		h := middleware.CORS([]string{"https://app.example.com"})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		t.Parallel()
		called := false
		h := middleware.CORS([]string{"*"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://anywhere.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, called)
	})
}

func TestAuth(t *testing.T) {
	t.Parallel()

	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	protected := func(captured *string) http.Handler {
		return middleware.Auth(tokens, logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*captured = middleware.UserID(r.Context())
		}))
	}

	t.Run("valid token passes claims through", func(t *testing.T) {
		t.Parallel()
		raw, err := tokens.Issue("user-7", "Premium")
		require.NoError(t, err)

		var uid string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		protected(&uid).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-7", uid)
	})

	t.Run("missing token rejected", func(t *testing.T) {
		t.Parallel()
		var uid string
		rec := httptest.NewRecorder()
		protected(&uid).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
		assert.Empty(t, uid)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		t.Parallel()
		var uid string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		protected(&uid).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, uid)
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
