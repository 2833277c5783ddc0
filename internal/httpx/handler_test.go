package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/pkg/logger"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps status and message", func(t *testing.T) {
		t.Parallel()
		h := httpx.Wrap(logger.Discard(), func(http.ResponseWriter, *http.Request) error {
			return httpx.ErrForbidden("Only Premium users can book a consultation.")
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"message":"Only Premium users can book a consultation."}`, rec.Body.String())
	})

	t.Run("unexpected error is masked", func(t *testing.T) {
		t.Parallel()
		h := httpx.Wrap(logger.Discard(), func(http.ResponseWriter, *http.Request) error {
			return errors.New("pq: connection refused")
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		t.Parallel()
		h := httpx.Wrap(logger.Discard(), func(w http.ResponseWriter, _ *http.Request) error {
			httpx.JSON(w, http.StatusOK, map[string]string{"ok": "yes"})
			return nil
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))

		var p payload
		require.NoError(t, httpx.Decode(req, &p))
		assert.Equal(t, "x", p.Name)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))

		var p payload
		err := httpx.Decode(req, &p)
		require.Error(t, err)

		var httpErr *httpx.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

		var p payload
		assert.Error(t, httpx.Decode(req, &p))
	})
}
