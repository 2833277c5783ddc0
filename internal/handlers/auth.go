package handlers

import (
	"errors"
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) error {
	var req api.LoginRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return httpx.ErrBadRequest("email and password are required")
	}

	u, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return httpx.ErrUnauthorized("Invalid email or password.")
		}
		return err
	}

	tok, err := h.tokens.Issue(u.ID, u.Plan)
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusOK, api.LoginResponse{Token: tok, User: apiUser(u)})
	return nil
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) error {
	var req api.SignupRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return httpx.ErrBadRequest("name, email and password are required")
	}
	if len(req.Password) < 8 {
		return httpx.ErrBadRequest("password must be at least 8 characters")
	}

	u, err := h.store.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return httpx.ErrConflict("An account with this email already exists.")
		}
		return err
	}

	httpx.JSON(w, http.StatusCreated, apiUser(u))
	return nil
}

func (h *Handlers) verify(w http.ResponseWriter, r *http.Request) error {
	u, err := h.currentUser(r)
	if err != nil {
		return err
	}
	httpx.JSON(w, http.StatusOK, api.VerifyResponse{User: apiUser(u)})
	return nil
}
