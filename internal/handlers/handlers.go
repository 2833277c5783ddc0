// Package handlers implements the HTTP API: authentication, dashboard,
// analysis history, academy lessons, forum, consultations, payments,
// referrals, and the diet planner.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/internal/token"
	"github.com/skinovaai/skinova/pkg/api"
	"github.com/skinovaai/skinova/pkg/cache"
)

// Handlers carries the dependencies shared by all endpoint handlers.
type Handlers struct {
	store      *store.Store
	tokens     *token.Manager
	logger     *slog.Logger
	markdown   goldmark.Markdown
	lessonHTML *cache.Memory[string]
	richText   *bluemonday.Policy
	plainText  *bluemonday.Policy
}

// New wires the handler set.
func New(st *store.Store, tokens *token.Manager, logger *slog.Logger) *Handlers {
	return &Handlers{
		store:  st,
		tokens: tokens,
		logger: logger,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		lessonHTML: cache.NewMemory[string](cache.WithMaxEntries(256)),
		richText:   bluemonday.UGCPolicy(),
		plainText:  bluemonday.StrictPolicy(),
	}
}

// Router builds the full router: health probes at the root, the JSON API
// under /api, middleware on everything.
func (h *Handlers) Router(corsOrigins []string) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.RequestID)
	root.Use(middleware.Recover(h.logger))
	root.Use(middleware.Logging(h.logger))
	root.Use(middleware.CORS(corsOrigins))

	root.Get("/health/live", httpx.Wrap(h.logger, h.healthLive))
	root.Get("/health/ready", httpx.Wrap(h.logger, h.healthReady))

	root.Route("/api", func(r chi.Router) {
		r.Post("/login", httpx.Wrap(h.logger, h.login))
		r.Post("/signup", httpx.Wrap(h.logger, h.signup))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(h.tokens, h.logger))

			r.Get("/verify", httpx.Wrap(h.logger, h.verify))
			r.Get("/dashboard", httpx.Wrap(h.logger, h.dashboard))

			r.Get("/analysis", httpx.Wrap(h.logger, h.analysisHistory))
			r.Post("/analysis", httpx.Wrap(h.logger, h.submitAnalysis))

			r.Get("/academy", httpx.Wrap(h.logger, h.academy))
			r.Post("/academy/quiz", httpx.Wrap(h.logger, h.submitQuiz))

			r.Get("/forum", httpx.Wrap(h.logger, h.forumIndex))
			r.Get("/forum/post/{id}", httpx.Wrap(h.logger, h.forumPost))
			r.Post("/forum", httpx.Wrap(h.logger, h.createPost))
			r.Post("/forum/reply/{id}", httpx.Wrap(h.logger, h.replyToPost))
			r.Post("/forum/upvote/{id}", httpx.Wrap(h.logger, h.upvoteReply))

			r.Get("/consult", httpx.Wrap(h.logger, h.bookings))
			r.Post("/consult", httpx.Wrap(h.logger, h.bookConsult))

			r.Post("/payments/coupon", httpx.Wrap(h.logger, h.applyCoupon))
			r.Post("/payments/checkout", httpx.Wrap(h.logger, h.checkout))

			r.Get("/referrals", httpx.Wrap(h.logger, h.rewards))
			r.Post("/referrals/redeem", httpx.Wrap(h.logger, h.redeemReward))

			r.Get("/diet", httpx.Wrap(h.logger, h.diet))
			r.Post("/settings/voicetip", httpx.Wrap(h.logger, h.voiceTip))
		})
	})

	return root
}

// currentUser loads the authenticated user for a request.
func (h *Handlers) currentUser(r *http.Request) (store.User, error) {
	u, err := h.store.UserByID(middleware.UserID(r.Context()))
	if err != nil {
		// A valid token for a deleted account; treat as an expired session.
		return store.User{}, httpx.ErrUnauthorized("session expired, please log in again", httpx.WithError(err))
	}
	return u, nil
}

func apiUser(u store.User) api.User {
	return api.User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Subscription:   u.Plan,
		ReferralPoints: u.ReferralPoints,
	}
}
