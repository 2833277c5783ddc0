package store

import "github.com/google/uuid"

// NewAnalysis is the input for recording a skin analysis.
type NewAnalysis struct {
	Date            string
	SkinType        string
	Recommendations []Recommendation
	AcneLevel       int
	WrinkleLevel    int
	Score           int
}

// Analyses returns the user's analyses, oldest first.
func (s *Store) Analyses(userID string) []Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Analysis
	for _, a := range s.analyses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out
}

// AddAnalysis records a new analysis for the user and returns it.
func (s *Store) AddAnalysis(userID string, in NewAnalysis) Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := &Analysis{
		ID:              "analysis-" + uuid.NewString(),
		UserID:          userID,
		Date:            in.Date,
		SkinType:        in.SkinType,
		Recommendations: in.Recommendations,
		AcneLevel:       in.AcneLevel,
		WrinkleLevel:    in.WrinkleLevel,
		Score:           in.Score,
	}
	s.analyses = append(s.analyses, a)
	return *a
}

// LastAnalysisDate returns the date of the user's most recent analysis, or
// "" when there is none.
func (s *Store) LastAnalysisDate(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.analyses) - 1; i >= 0; i-- {
		if s.analyses[i].UserID == userID {
			return s.analyses[i].Date
		}
	}
	return ""
}
