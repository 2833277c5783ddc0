package store

// Subscription plan names.
const (
	PlanFree    = "Free"
	PlanPremium = "Premium"
)

// User is an account record. PasswordHash is a bcrypt hash.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   []byte
	Plan           string
	ReferralPoints int
}

// Recommendation is a product suggestion attached to an analysis.
type Recommendation struct {
	Product string
	Purpose string
}

// Analysis is one recorded skin analysis.
type Analysis struct {
	ID              string
	UserID          string
	Date            string
	SkinType        string
	Recommendations []Recommendation
	AcneLevel       int
	WrinkleLevel    int
	Score           int
}

// Lesson is an academy unit. Markdown holds the raw lesson source;
// rendering to HTML happens at the handler layer.
type Lesson struct {
	ID       string
	Title    string
	Category string
	Markdown string
	Duration string
}

// QuizResult records a user's best quiz score for a lesson.
type QuizResult struct {
	LessonID string
	Score    int
}

// Reply is one forum reply.
type Reply struct {
	ID      string
	PostID  string
	Author  string
	Content string
	Date    string
	Upvotes int
}

// Post is a forum thread.
type Post struct {
	ID       string
	Title    string
	Content  string
	Category string
	Author   string
	Date     string
	Upvotes  int
	Replies  []*Reply
}

// Booking is an expert-consultation appointment.
type Booking struct {
	ID     string
	UserID string
	Date   string
	Time   string
	Type   string
	Notes  string
}

// Reward is a redeemable referral reward.
type Reward struct {
	ID     string
	Name   string
	Points int
}

// Coupon maps a discount code to its percentage.
type Coupon struct {
	Code     string
	Discount int
}

// FocusArea is one section of the diet plan.
type FocusArea struct {
	Title string
	Foods string
}

// DietPlan is the canned skin-boosting diet plan.
type DietPlan struct {
	Summary    string
	FocusAreas []FocusArea
}
