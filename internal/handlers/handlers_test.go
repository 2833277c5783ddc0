package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinovaai/skinova/internal/handlers"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/internal/token"
	"github.com/skinovaai/skinova/pkg/api"
	"github.com/skinovaai/skinova/pkg/logger"
)

type testAPI struct {
	server *httptest.Server
	client *http.Client
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	st, err := store.New()
	require.NoError(t, err)
	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	h := handlers.New(st, tokens, logger.Discard())
	srv := httptest.NewServer(h.Router([]string{"*"}))
	t.Cleanup(srv.Close)

	return &testAPI{server: srv, client: srv.Client()}
}

func (a *testAPI) request(t *testing.T, method, path, bearer string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := a.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (a *testAPI) login(t *testing.T, email, password string) (string, api.User) {
	t.Helper()

	var resp api.LoginResponse
	code := a.request(t, http.MethodPost, "/api/login", "", api.LoginRequest{Email: email, Password: password}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

func TestAuthEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	t.Run("login success", func(t *testing.T) {
		tok, user := a.login(t, "mock@user.com", "password123")
		assert.NotEmpty(t, tok)
		assert.Equal(t, "Alex Johnson", user.Name)
		assert.Equal(t, "Premium", user.Subscription)
	})

	t.Run("login bad password surfaces message", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, a.server.URL+"/api/login",
			bytes.NewBufferString(`{"email":"mock@user.com","password":"wrong"}`))
		require.NoError(t, err)
		resp, err := a.client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var body api.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Invalid email or password.", body.Message)
	})

	t.Run("signup then login", func(t *testing.T) {
		code := a.request(t, http.MethodPost, "/api/signup", "",
			api.SignupRequest{Name: "Test User", Email: "test@user.com", Password: "longenough"}, nil)
		assert.Equal(t, http.StatusCreated, code)

		_, user := a.login(t, "test@user.com", "longenough")
		assert.Equal(t, "Free", user.Subscription)
	})

	t.Run("signup duplicate email conflicts", func(t *testing.T) {
		code := a.request(t, http.MethodPost, "/api/signup", "",
			api.SignupRequest{Name: "Dup", Email: "mock@user.com", Password: "longenough"}, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("verify round trip", func(t *testing.T) {
		tok, _ := a.login(t, "mock@user.com", "password123")

		var resp api.VerifyResponse
		code := a.request(t, http.MethodGet, "/api/verify", tok, nil, &resp)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "user-123", resp.User.ID)
	})

	t.Run("protected route without token", func(t *testing.T) {
		code := a.request(t, http.MethodGet, "/api/dashboard", "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "mock@user.com", "password123")

	var dash api.Dashboard
	code := a.request(t, http.MethodGet, "/api/dashboard", tok, nil, &dash)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "8/12/2026", dash.LastAnalysis)
	assert.Zero(t, dash.AcademyProgress)
	assert.Len(t, dash.TrendingPosts, 3)
	assert.GreaterOrEqual(t, dash.TrendingPosts[0].Upvotes, dash.TrendingPosts[1].Upvotes)
}

func TestAnalysisEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "mock@user.com", "password123")

	var history api.AnalysisHistory
	code := a.request(t, http.MethodGet, "/api/analysis", tok, nil, &history)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, history.History, 1)

	var created api.AnalysisCreated
	code = a.request(t, http.MethodPost, "/api/analysis", tok, api.AnalysisRequest{
		SkinType:  "Oily",
		AcneLevel: 3, WrinkleLevel: 2, Score: 68,
		Recommendations: []api.Recommendation{{Product: "Gentle Cleanser", Purpose: "Daily wash"}},
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, created.NewAnalysis.ID)
	assert.NotEmpty(t, created.NewAnalysis.Date, "server fills missing date")

	code = a.request(t, http.MethodGet, "/api/analysis", tok, nil, &history)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, history.History, 2)

	code = a.request(t, http.MethodPost, "/api/analysis", tok, api.AnalysisRequest{Score: 150}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAcademyEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "mock@user.com", "password123")

	var academy api.AcademyResponse
	code := a.request(t, http.MethodGet, "/api/academy", tok, nil, &academy)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, academy.Lessons)

	first := academy.Lessons[0]
	assert.Contains(t, first.Content, "<h2", "markdown is rendered to HTML")
	assert.NotContains(t, first.Content, "## ", "no raw markdown leaks")
	assert.False(t, first.Completed)

	code = a.request(t, http.MethodPost, "/api/academy/quiz", tok,
		api.QuizSubmission{LessonID: first.ID, Score: 4}, nil)
	require.Equal(t, http.StatusNoContent, code)

	code = a.request(t, http.MethodGet, "/api/academy", tok, nil, &academy)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, academy.Lessons[0].Completed)

	code = a.request(t, http.MethodPost, "/api/academy/quiz", tok,
		api.QuizSubmission{LessonID: "lesson-unknown", Score: 4}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestForumEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, user := a.login(t, "mock@user.com", "password123")

	var forum api.ForumResponse
	code := a.request(t, http.MethodGet, "/api/forum", tok, nil, &forum)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, forum.Posts)
	assert.Equal(t, "post-3", forum.Posts[0].ID, "newest first")

	var post api.PostResponse
	code = a.request(t, http.MethodGet, "/api/forum/post/post-1", tok, nil, &post)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, post.Post.Replies, 2)

	code = a.request(t, http.MethodGet, "/api/forum/post/post-nope", tok, nil, nil)
	assert.Equalf(t, http.StatusNotFound, code, "unknown post id")

	t.Run("create post strips html", func(t *testing.T) {
		var created map[string]string
		code := a.request(t, http.MethodPost, "/api/forum", tok, api.CreatePostRequest{
			Title:    `Hello <script>alert(1)</script>`,
			Content:  "Is niacinamide worth it?",
			Category: "Products",
		}, &created)
		require.Equal(t, http.StatusCreated, code)

		var p api.PostResponse
		code = a.request(t, http.MethodGet, "/api/forum/post/"+created["id"], tok, nil, &p)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Hello", p.Post.Title)
		assert.Equal(t, user.Name, p.Post.Author)
	})

	t.Run("reply and upvote", func(t *testing.T) {
		var created map[string]string
		code := a.request(t, http.MethodPost, "/api/forum/reply/post-3", tok,
			api.ReplyRequest{Content: "Add a hydrating toner."}, &created)
		require.Equal(t, http.StatusCreated, code)

		var upvoted map[string]int
		code = a.request(t, http.MethodPost, "/api/forum/upvote/"+created["id"], tok, nil, &upvoted)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, upvoted["upvotes"])
	})
}

func TestConsultEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)

	t.Run("premium user books", func(t *testing.T) {
		tok, _ := a.login(t, "mock@user.com", "password123")

		var booking api.Booking
		code := a.request(t, http.MethodPost, "/api/consult", tok, api.BookingRequest{
			Date: "9/5/2026", Time: "10:00", Type: "Video Call", Notes: "flare-up",
		}, &booking)
		require.Equal(t, http.StatusCreated, code)
		assert.NotEmpty(t, booking.ID)

		var list api.BookingsResponse
		code = a.request(t, http.MethodGet, "/api/consult", tok, nil, &list)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, list.Bookings, 1)
	})

	t.Run("free user is rejected with message", func(t *testing.T) {
		tok, _ := a.login(t, "maya@user.com", "password123")

		req, err := http.NewRequest(http.MethodPost, a.server.URL+"/api/consult",
			bytes.NewBufferString(`{"date":"9/6/2026","time":"11:00","type":"Video Call","notes":""}`))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
		resp, err := a.client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		var body api.Error
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Only Premium users can book a consultation.", body.Message)
	})
}

func TestPaymentEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "maya@user.com", "password123")

	t.Run("valid coupon", func(t *testing.T) {
		var resp api.CouponResponse
		code := a.request(t, http.MethodPost, "/api/payments/coupon", tok, api.CouponRequest{Code: "GLOW20"}, &resp)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 20, resp.Discount)
	})

	t.Run("invalid coupon", func(t *testing.T) {
		code := a.request(t, http.MethodPost, "/api/payments/coupon", tok, api.CouponRequest{Code: "BOGUS"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("checkout upgrades plan", func(t *testing.T) {
		var user api.User
		code := a.request(t, http.MethodPost, "/api/payments/checkout", tok, api.CheckoutRequest{
			Plan: "Premium", Price: "23.99", Coupon: "GLOW20",
		}, &user)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Premium", user.Subscription)
	})

	t.Run("bad price rejected", func(t *testing.T) {
		code := a.request(t, http.MethodPost, "/api/payments/checkout", tok, api.CheckoutRequest{
			Plan: "Pro", Price: "not-a-number",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("unknown plan rejected", func(t *testing.T) {
		code := a.request(t, http.MethodPost, "/api/payments/checkout", tok, api.CheckoutRequest{
			Plan: "Platinum", Price: "99.99",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestReferralEndpoints(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "mock@user.com", "password123")

	var rewards api.RewardsResponse
	code := a.request(t, http.MethodGet, "/api/referrals", tok, nil, &rewards)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, rewards.Rewards)

	var user api.User
	code = a.request(t, http.MethodPost, "/api/referrals/redeem", tok, api.RedeemRequest{RewardID: "reward-2"}, &user)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 90, user.ReferralPoints)

	code = a.request(t, http.MethodPost, "/api/referrals/redeem", tok, api.RedeemRequest{RewardID: "reward-nope"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDietAndVoiceTip(t *testing.T) {
	t.Parallel()
	a := newTestAPI(t)
	tok, _ := a.login(t, "mock@user.com", "password123")

	var diet api.DietResponse
	code := a.request(t, http.MethodGet, "/api/diet", tok, nil, &diet)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, diet.Plan.Summary)
	assert.NotEmpty(t, diet.Plan.FocusAreas)

	var tip api.VoiceTipResponse
	code = a.request(t, http.MethodPost, "/api/settings/voicetip", tok, nil, &tip)
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, tip.Tip)
}
