package handlers

import (
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
)

func (h *Handlers) healthLive(w http.ResponseWriter, r *http.Request) error {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	return nil
}

func (h *Handlers) healthReady(w http.ResponseWriter, r *http.Request) error {
	// The store is seeded at construction; if a probe user is readable the
	// dataset is usable.
	if _, err := h.store.UserByID("user-123"); err != nil {
		return httpx.ErrInternal("store not ready", httpx.WithError(err))
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	return nil
}
