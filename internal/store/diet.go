package store

// Diet returns the canned skin-boosting diet plan.
func (s *Store) Diet() DietPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.diet
	out.FocusAreas = append([]FocusArea(nil), s.diet.FocusAreas...)
	return out
}

// NextTip rotates through the seeded skincare tips.
func (s *Store) NextTip() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tips) == 0 {
		return ""
	}
	tip := s.tips[s.tipIndex%len(s.tips)]
	s.tipIndex++
	return tip
}
