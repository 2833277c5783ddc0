package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinovaai/skinova/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New()
	require.NoError(t, err)
	return s
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	t.Run("seeded user", func(t *testing.T) {
		t.Parallel()
		u, err := s.Authenticate("mock@user.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Alex Johnson", u.Name)
		assert.Equal(t, store.PlanPremium, u.Plan)
		assert.Equal(t, 120, u.ReferralPoints)
	})

	t.Run("email is case-insensitive", func(t *testing.T) {
		t.Parallel()
		_, err := s.Authenticate("MOCK@USER.COM", "password123")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		_, err := s.Authenticate("mock@user.com", "nope")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		_, err := s.Authenticate("ghost@user.com", "password123")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	u, err := s.CreateUser("New User", "new@user.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, store.PlanFree, u.Plan)
	assert.Zero(t, u.ReferralPoints)

	got, err := s.Authenticate("new@user.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.CreateUser("Dup", "NEW@user.com", "other")
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestAnalyses(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	history := s.Analyses("user-123")
	require.Len(t, history, 1)
	assert.Equal(t, "8/12/2026", s.LastAnalysisDate("user-123"))

	created := s.AddAnalysis("user-123", store.NewAnalysis{
		Date:      "8/30/2026",
		SkinType:  "Oily",
		AcneLevel: 3,
		Score:     74,
	})
	assert.NotEmpty(t, created.ID)

	history = s.Analyses("user-123")
	require.Len(t, history, 2)
	assert.Equal(t, "8/30/2026", history[1].Date, "history is oldest first")
	assert.Equal(t, "8/30/2026", s.LastAnalysisDate("user-123"))

	assert.Empty(t, s.Analyses("user-456"))
	assert.Empty(t, s.LastAnalysisDate("user-456"))
}

func TestAcademy(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	lessons := s.Lessons("user-123")
	require.NotEmpty(t, lessons)
	for _, l := range lessons {
		assert.False(t, l.Completed)
	}
	assert.Zero(t, s.AcademyProgress("user-123"))

	require.NoError(t, s.RecordQuiz("user-123", lessons[0].ID, 4))

	updated := s.Lessons("user-123")
	assert.True(t, updated[0].Completed)
	assert.Equal(t, 100/len(lessons), s.AcademyProgress("user-123"))

	// A lower rescore keeps the best result and stays completed.
	require.NoError(t, s.RecordQuiz("user-123", lessons[0].ID, 2))
	assert.True(t, s.Lessons("user-123")[0].Completed)

	assert.ErrorIs(t, s.RecordQuiz("user-123", "lesson-unknown", 5), store.ErrNotFound)

	// Completion is per user.
	for _, l := range s.Lessons("user-456") {
		assert.False(t, l.Completed)
	}
}

func TestForum(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	t.Run("posts newest first without replies", func(t *testing.T) {
		posts := s.Posts()
		require.NotEmpty(t, posts)
		assert.Equal(t, "post-3", posts[0].ID)
		assert.Nil(t, posts[0].Replies)
	})

	t.Run("trending sorted by upvotes", func(t *testing.T) {
		trending := s.TrendingPosts(2)
		require.Len(t, trending, 2)
		assert.GreaterOrEqual(t, trending[0].Upvotes, trending[1].Upvotes)
	})

	t.Run("post with replies", func(t *testing.T) {
		p, err := s.Post("post-1")
		require.NoError(t, err)
		assert.Len(t, p.Replies, 2)

		_, err = s.Post("post-unknown")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("create post and reply", func(t *testing.T) {
		created := s.CreatePost("Alex Johnson", "New thread", "Body", "Routine")
		assert.NotEmpty(t, created.ID)

		reply, err := s.AddReply(created.ID, "Maya Patel", "First!")
		require.NoError(t, err)

		p, err := s.Post(created.ID)
		require.NoError(t, err)
		require.Len(t, p.Replies, 1)
		assert.Equal(t, reply.ID, p.Replies[0].ID)

		_, err = s.AddReply("post-unknown", "x", "y")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upvote reply", func(t *testing.T) {
		before, err := s.Post("post-2")
		require.NoError(t, err)
		replyID := before.Replies[0].ID
		was := before.Replies[0].Upvotes

		count, err := s.UpvoteReply(replyID)
		require.NoError(t, err)
		assert.Equal(t, was+1, count)

		_, err = s.UpvoteReply("reply-unknown")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestConsult(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	assert.Empty(t, s.Bookings("user-123"))
	assert.Empty(t, s.UpcomingConsult("user-123"))

	b := s.CreateBooking("user-123", "9/5/2026", "10:00", "Video Call", "flare-up")
	assert.NotEmpty(t, b.ID)

	bookings := s.Bookings("user-123")
	require.Len(t, bookings, 1)
	assert.Equal(t, "9/5/2026 at 10:00", s.UpcomingConsult("user-123"))

	assert.Empty(t, s.Bookings("user-456"))
}

func TestBilling(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	t.Run("coupon lookup", func(t *testing.T) {
		t.Parallel()
		discount, err := s.CouponDiscount("SKINOVA10")
		require.NoError(t, err)
		assert.Equal(t, 10, discount)

		_, err = s.CouponDiscount("BOGUS")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("checkout upgrades plan", func(t *testing.T) {
		u, err := s.Checkout("user-456", store.PlanPremium)
		require.NoError(t, err)
		assert.Equal(t, store.PlanPremium, u.Plan)

		got, err := s.UserByID("user-456")
		require.NoError(t, err)
		assert.Equal(t, store.PlanPremium, got.Plan)
	})

	t.Run("redeem reward", func(t *testing.T) {
		rewards := s.Rewards()
		require.NotEmpty(t, rewards)

		u, err := s.RedeemReward("user-123", "reward-1")
		require.NoError(t, err)
		assert.Equal(t, 70, u.ReferralPoints)

		_, err = s.RedeemReward("user-123", "reward-unknown")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("insufficient points", func(t *testing.T) {
		_, err := s.RedeemReward("user-456", "reward-3")
		assert.ErrorIs(t, err, store.ErrInsufficientPoints)
	})
}

func TestDietAndTips(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	plan := s.Diet()
	assert.NotEmpty(t, plan.Summary)
	assert.NotEmpty(t, plan.FocusAreas)

	first := s.NextTip()
	assert.NotEmpty(t, first)
	second := s.NextTip()
	assert.NotEqual(t, first, second, "tips rotate")
}
