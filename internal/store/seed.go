package store

import (
	_ "embed"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedData []byte

type seedFile struct {
	Users []struct {
		ID             string `yaml:"id"`
		Name           string `yaml:"name"`
		Email          string `yaml:"email"`
		Password       string `yaml:"password"`
		Plan           string `yaml:"plan"`
		ReferralPoints int    `yaml:"referralPoints"`
	} `yaml:"users"`
	Analyses []struct {
		ID              string `yaml:"id"`
		UserID          string `yaml:"userId"`
		Date            string `yaml:"date"`
		SkinType        string `yaml:"skinType"`
		AcneLevel       int    `yaml:"acneLevel"`
		WrinkleLevel    int    `yaml:"wrinkleLevel"`
		Score           int    `yaml:"score"`
		Recommendations []struct {
			Product string `yaml:"product"`
			Purpose string `yaml:"purpose"`
		} `yaml:"recommendations"`
	} `yaml:"analyses"`
	Lessons []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Category string `yaml:"category"`
		Duration string `yaml:"duration"`
		Markdown string `yaml:"markdown"`
	} `yaml:"lessons"`
	Posts []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Content  string `yaml:"content"`
		Category string `yaml:"category"`
		Author   string `yaml:"author"`
		Date     string `yaml:"date"`
		Upvotes  int    `yaml:"upvotes"`
		Replies  []struct {
			ID      string `yaml:"id"`
			Author  string `yaml:"author"`
			Content string `yaml:"content"`
			Date    string `yaml:"date"`
			Upvotes int    `yaml:"upvotes"`
		} `yaml:"replies"`
	} `yaml:"posts"`
	Rewards []struct {
		ID     string `yaml:"id"`
		Name   string `yaml:"name"`
		Points int    `yaml:"points"`
	} `yaml:"rewards"`
	Coupons []struct {
		Code     string `yaml:"code"`
		Discount int    `yaml:"discount"`
	} `yaml:"coupons"`
	Diet struct {
		Summary    string `yaml:"summary"`
		FocusAreas []struct {
			Title string `yaml:"title"`
			Foods string `yaml:"foods"`
		} `yaml:"focusAreas"`
	} `yaml:"diet"`
	Tips []string `yaml:"tips"`
}

// loadSeed parses the embedded fixture into store state. Seed passwords are
// hashed at load time; bcrypt.MinCost keeps startup fast for demo data.
func (s *Store) loadSeed(data []byte) error {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("store: parse seed: %w", err)
	}

	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.MinCost)
		if err != nil {
			return fmt.Errorf("store: hash seed password for %s: %w", u.Email, err)
		}
		s.users[u.ID] = &User{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			PasswordHash:   hash,
			Plan:           u.Plan,
			ReferralPoints: u.ReferralPoints,
		}
	}

	for _, a := range seed.Analyses {
		analysis := &Analysis{
			ID:           a.ID,
			UserID:       a.UserID,
			Date:         a.Date,
			SkinType:     a.SkinType,
			AcneLevel:    a.AcneLevel,
			WrinkleLevel: a.WrinkleLevel,
			Score:        a.Score,
		}
		for _, r := range a.Recommendations {
			analysis.Recommendations = append(analysis.Recommendations, Recommendation(r))
		}
		s.analyses = append(s.analyses, analysis)
	}

	for _, l := range seed.Lessons {
		lesson := &Lesson{
			ID:       l.ID,
			Title:    l.Title,
			Category: l.Category,
			Markdown: l.Markdown,
			Duration: l.Duration,
		}
		s.lessons = append(s.lessons, lesson)
	}

	for _, p := range seed.Posts {
		post := &Post{
			ID:       p.ID,
			Title:    p.Title,
			Content:  p.Content,
			Category: p.Category,
			Author:   p.Author,
			Date:     p.Date,
			Upvotes:  p.Upvotes,
		}
		for _, r := range p.Replies {
			reply := &Reply{
				ID:      r.ID,
				PostID:  p.ID,
				Author:  r.Author,
				Content: r.Content,
				Date:    r.Date,
				Upvotes: r.Upvotes,
			}
			post.Replies = append(post.Replies, reply)
			s.replies[reply.ID] = reply
		}
		s.posts = append(s.posts, post)
	}

	for _, r := range seed.Rewards {
		s.rewards = append(s.rewards, &Reward{ID: r.ID, Name: r.Name, Points: r.Points})
	}
	for _, c := range seed.Coupons {
		s.coupons[c.Code] = c.Discount
	}

	s.diet = DietPlan{Summary: seed.Diet.Summary}
	for _, fa := range seed.Diet.FocusAreas {
		s.diet.FocusAreas = append(s.diet.FocusAreas, FocusArea(fa))
	}
	s.tips = seed.Tips

	return nil
}
