package handlers

import (
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) diet(w http.ResponseWriter, r *http.Request) error {
	plan := h.store.Diet()

	out := api.DietPlan{Summary: plan.Summary}
	for _, fa := range plan.FocusAreas {
		out.FocusAreas = append(out.FocusAreas, api.FocusArea(fa))
	}
	httpx.JSON(w, http.StatusOK, api.DietResponse{Plan: out})
	return nil
}

func (h *Handlers) voiceTip(w http.ResponseWriter, r *http.Request) error {
	httpx.JSON(w, http.StatusOK, api.VoiceTipResponse{Tip: h.store.NextTip()})
	return nil
}
