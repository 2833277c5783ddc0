package apiclient

import (
	"context"

	"github.com/skinovaai/skinova/pkg/api"
)

// Dashboard fetches the landing-page aggregate.
func (c *Client) Dashboard(ctx context.Context) (api.Dashboard, error) {
	var out api.Dashboard
	err := c.get(ctx, "/dashboard", &out)
	return out, err
}

// AnalysisHistory returns past skin analyses, oldest first.
func (c *Client) AnalysisHistory(ctx context.Context) ([]api.Analysis, error) {
	var out api.AnalysisHistory
	if err := c.get(ctx, "/analysis", &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

// SubmitAnalysis records a new analysis and returns it with its assigned id.
func (c *Client) SubmitAnalysis(ctx context.Context, req api.AnalysisRequest) (api.Analysis, error) {
	var out api.AnalysisCreated
	if err := c.post(ctx, "/analysis", req, &out); err != nil {
		return api.Analysis{}, err
	}
	return out.NewAnalysis, nil
}

// Academy lists lessons with rendered content.
func (c *Client) Academy(ctx context.Context) ([]api.Lesson, error) {
	var out api.AcademyResponse
	if err := c.get(ctx, "/academy", &out); err != nil {
		return nil, err
	}
	return out.Lessons, nil
}

// SubmitQuiz records a lesson quiz score.
func (c *Client) SubmitQuiz(ctx context.Context, lessonID string, score int) error {
	return c.post(ctx, "/academy/quiz", api.QuizSubmission{LessonID: lessonID, Score: score}, nil)
}

// ForumPosts lists forum post summaries.
func (c *Client) ForumPosts(ctx context.Context) ([]api.PostSummary, error) {
	var out api.ForumResponse
	if err := c.get(ctx, "/forum", &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

// ForumPost fetches one post with its replies.
func (c *Client) ForumPost(ctx context.Context, id string) (api.Post, error) {
	var out api.PostResponse
	if err := c.get(ctx, "/forum/post/"+id, &out); err != nil {
		return api.Post{}, err
	}
	return out.Post, nil
}

// CreatePost starts a new forum thread.
func (c *Client) CreatePost(ctx context.Context, req api.CreatePostRequest) error {
	return c.post(ctx, "/forum", req, nil)
}

// ReplyToPost answers a thread.
func (c *Client) ReplyToPost(ctx context.Context, postID, content string) error {
	return c.post(ctx, "/forum/reply/"+postID, api.ReplyRequest{Content: content}, nil)
}

// UpvoteReply upvotes a reply.
func (c *Client) UpvoteReply(ctx context.Context, replyID string) error {
	return c.post(ctx, "/forum/upvote/"+replyID, nil, nil)
}

// Bookings lists the user's consultation bookings.
func (c *Client) Bookings(ctx context.Context) ([]api.Booking, error) {
	var out api.BookingsResponse
	if err := c.get(ctx, "/consult", &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

// BookConsult books an expert consultation. The server rejects non-Premium
// plans with a displayable message.
func (c *Client) BookConsult(ctx context.Context, req api.BookingRequest) error {
	return c.post(ctx, "/consult", req, nil)
}

// ApplyCoupon validates a discount code.
func (c *Client) ApplyCoupon(ctx context.Context, code string) (int, error) {
	var out api.CouponResponse
	if err := c.post(ctx, "/payments/coupon", api.CouponRequest{Code: code}, &out); err != nil {
		return 0, err
	}
	return out.Discount, nil
}

// Checkout performs the mock plan purchase.
func (c *Client) Checkout(ctx context.Context, req api.CheckoutRequest) error {
	return c.post(ctx, "/payments/checkout", req, nil)
}

// Rewards lists redeemable referral rewards.
func (c *Client) Rewards(ctx context.Context) ([]api.Reward, error) {
	var out api.RewardsResponse
	if err := c.get(ctx, "/referrals", &out); err != nil {
		return nil, err
	}
	return out.Rewards, nil
}

// RedeemReward spends referral points on a reward.
func (c *Client) RedeemReward(ctx context.Context, rewardID string) error {
	return c.post(ctx, "/referrals/redeem", api.RedeemRequest{RewardID: rewardID}, nil)
}

// DietPlan fetches the canned diet plan.
func (c *Client) DietPlan(ctx context.Context) (api.DietPlan, error) {
	var out api.DietResponse
	if err := c.get(ctx, "/diet", &out); err != nil {
		return api.DietPlan{}, err
	}
	return out.Plan, nil
}

// VoiceTip fetches the mock AI skincare tip.
func (c *Client) VoiceTip(ctx context.Context) (string, error) {
	var out api.VoiceTipResponse
	if err := c.post(ctx, "/settings/voicetip", nil, &out); err != nil {
		return "", err
	}
	return out.Tip, nil
}
