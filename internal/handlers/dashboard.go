package handlers

import (
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

const trendingPostCount = 3

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) error {
	uid := middleware.UserID(r.Context())

	out := api.Dashboard{
		LastAnalysis:    h.store.LastAnalysisDate(uid),
		AcademyProgress: h.store.AcademyProgress(uid),
		UpcomingConsult: h.store.UpcomingConsult(uid),
		TrendingPosts:   apiPostSummaries(h.store.TrendingPosts(trendingPostCount)),
	}
	httpx.JSON(w, http.StatusOK, out)
	return nil
}

func apiPostSummaries(posts []store.PostSummary) []api.PostSummary {
	out := make([]api.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, api.PostSummary{
			ID:       p.ID,
			Title:    p.Title,
			Content:  p.Content,
			Category: p.Category,
			Author:   p.Author,
			Date:     p.Date,
			Replies:  p.ReplyCount,
			Upvotes:  p.Upvotes,
		})
	}
	return out
}
