package handlers

import (
	"errors"
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) rewards(w http.ResponseWriter, r *http.Request) error {
	rewards := h.store.Rewards()
	out := api.RewardsResponse{Rewards: make([]api.Reward, 0, len(rewards))}
	for _, rw := range rewards {
		out.Rewards = append(out.Rewards, api.Reward{ID: rw.ID, Name: rw.Name, Points: rw.Points})
	}
	httpx.JSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) redeemReward(w http.ResponseWriter, r *http.Request) error {
	var req api.RedeemRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.RewardID == "" {
		return httpx.ErrBadRequest("rewardId is required")
	}

	u, err := h.store.RedeemReward(middleware.UserID(r.Context()), req.RewardID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return httpx.ErrNotFound("reward not found")
	case errors.Is(err, store.ErrInsufficientPoints):
		return httpx.ErrBadRequest("Not enough referral points for this reward.")
	case err != nil:
		return err
	}

	httpx.JSON(w, http.StatusOK, apiUser(u))
	return nil
}
