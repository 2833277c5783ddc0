// Package api defines the JSON wire types shared by the Skinova backend and
// its clients. Field names mirror the payloads the web client renders.
package api

// User is the authenticated principal as the API exposes it.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subscription   string `json:"subscription"`
	ReferralPoints int    `json:"referralPoints"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Message string `json:"message"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the identity it proves.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignupRequest creates an account. Signing up does not log in.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyResponse is returned by the identity-verification endpoint used
// during startup reconciliation of a persisted token.
type VerifyResponse struct {
	User User `json:"user"`
}

// Dashboard aggregates the landing-page stats.
type Dashboard struct {
	LastAnalysis    string        `json:"lastAnalysis"`
	UpcomingConsult string        `json:"upcomingConsult"`
	TrendingPosts   []PostSummary `json:"trendingPosts"`
	AcademyProgress int           `json:"academyProgress"`
}

// PostSummary is the trimmed post shape shown on the dashboard and the
// forum index.
type PostSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Replies  int    `json:"replies"`
	Upvotes  int    `json:"upvotes"`
}

// Recommendation is a product suggestion attached to an analysis.
type Recommendation struct {
	Product string `json:"product"`
	Purpose string `json:"purpose"`
}

// Analysis is one skin-analysis result.
type Analysis struct {
	ID              string           `json:"id"`
	Date            string           `json:"date"`
	SkinType        string           `json:"skinType"`
	Recommendations []Recommendation `json:"recommendations"`
	AcneLevel       int              `json:"acneLevel"`
	WrinkleLevel    int              `json:"wrinkleLevel"`
	Score           int              `json:"score"`
}

// AnalysisHistory lists past analyses, oldest first.
type AnalysisHistory struct {
	History []Analysis `json:"history"`
}

// AnalysisRequest submits a new analysis for recording.
type AnalysisRequest struct {
	Date            string           `json:"date"`
	SkinType        string           `json:"skinType"`
	Recommendations []Recommendation `json:"recommendations"`
	AcneLevel       int              `json:"acneLevel"`
	WrinkleLevel    int              `json:"wrinkleLevel"`
	Score           int              `json:"score"`
}

// AnalysisCreated acknowledges a recorded analysis.
type AnalysisCreated struct {
	NewAnalysis Analysis `json:"newAnalysis"`
}

// Lesson is an academy unit. Content is sanitized HTML rendered from the
// lesson's markdown source.
type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Duration  string `json:"duration"`
	Completed bool   `json:"completed"`
}

// AcademyResponse lists lessons.
type AcademyResponse struct {
	Lessons []Lesson `json:"lessons"`
}

// QuizSubmission records a quiz result for a lesson.
type QuizSubmission struct {
	LessonID string `json:"lessonId"`
	Score    int    `json:"score"`
}

// Reply is one forum reply.
type Reply struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Upvotes int    `json:"upvotes"`
}

// Post is a full forum post with its replies.
type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Author   string  `json:"author"`
	Date     string  `json:"date"`
	Replies  []Reply `json:"replies"`
	Upvotes  int     `json:"upvotes"`
}

// ForumResponse lists post summaries.
type ForumResponse struct {
	Posts []PostSummary `json:"posts"`
}

// PostResponse carries one full post.
type PostResponse struct {
	Post Post `json:"post"`
}

// CreatePostRequest starts a new forum thread.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// ReplyRequest answers a thread.
type ReplyRequest struct {
	Content string `json:"content"`
}

// Booking is one expert-consultation appointment.
type Booking struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

// BookingsResponse lists the user's bookings.
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

// BookingRequest books a consultation. Requires a Premium subscription.
type BookingRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}

// CouponRequest validates a discount code.
type CouponRequest struct {
	Code string `json:"code"`
}

// CouponResponse reports the discount percentage for a valid code.
type CouponResponse struct {
	Discount int `json:"discount"`
}

// CheckoutRequest performs the mock plan purchase. Price is the final,
// coupon-adjusted amount as a decimal string, matching what the client
// displays.
type CheckoutRequest struct {
	Plan   string `json:"plan"`
	Price  string `json:"price"`
	Coupon string `json:"coupon,omitempty"`
}

// Reward is one redeemable referral reward.
type Reward struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// RewardsResponse lists rewards.
type RewardsResponse struct {
	Rewards []Reward `json:"rewards"`
}

// RedeemRequest spends referral points on a reward.
type RedeemRequest struct {
	RewardID string `json:"rewardId"`
}

// FocusArea is one section of a diet plan.
type FocusArea struct {
	Title string `json:"title"`
	Foods string `json:"foods"`
}

// DietPlan is the canned skin-boosting diet plan.
type DietPlan struct {
	Summary    string      `json:"summary"`
	FocusAreas []FocusArea `json:"focusAreas"`
}

// DietResponse wraps the plan.
type DietResponse struct {
	Plan DietPlan `json:"plan"`
}

// VoiceTipResponse is the mock AI skincare tip.
type VoiceTipResponse struct {
	Tip string `json:"tip"`
}
