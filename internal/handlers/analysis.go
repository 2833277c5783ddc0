package handlers

import (
	"net/http"
	"time"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) analysisHistory(w http.ResponseWriter, r *http.Request) error {
	analyses := h.store.Analyses(middleware.UserID(r.Context()))

	out := api.AnalysisHistory{History: make([]api.Analysis, 0, len(analyses))}
	for _, a := range analyses {
		out.History = append(out.History, apiAnalysis(a))
	}
	httpx.JSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) submitAnalysis(w http.ResponseWriter, r *http.Request) error {
	var req api.AnalysisRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.Score < 0 || req.Score > 100 {
		return httpx.ErrBadRequest("score must be between 0 and 100")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("1/2/2006")
	}

	in := store.NewAnalysis{
		Date:         req.Date,
		SkinType:     req.SkinType,
		AcneLevel:    req.AcneLevel,
		WrinkleLevel: req.WrinkleLevel,
		Score:        req.Score,
	}
	for _, rec := range req.Recommendations {
		in.Recommendations = append(in.Recommendations, store.Recommendation(rec))
	}

	created := h.store.AddAnalysis(middleware.UserID(r.Context()), in)
	httpx.JSON(w, http.StatusCreated, api.AnalysisCreated{NewAnalysis: apiAnalysis(created)})
	return nil
}

func apiAnalysis(a store.Analysis) api.Analysis {
	out := api.Analysis{
		ID:           a.ID,
		Date:         a.Date,
		SkinType:     a.SkinType,
		AcneLevel:    a.AcneLevel,
		WrinkleLevel: a.WrinkleLevel,
		Score:        a.Score,
	}
	for _, rec := range a.Recommendations {
		out.Recommendations = append(out.Recommendations, api.Recommendation(rec))
	}
	return out
}
