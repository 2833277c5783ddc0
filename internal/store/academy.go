package store

// LessonView is a lesson together with the user's completion state.
type LessonView struct {
	Lesson
	Completed bool
}

// Lessons returns all lessons with the user's completion flags.
func (s *Store) Lessons(userID string) []LessonView {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := s.quizzes[userID]
	out := make([]LessonView, 0, len(s.lessons))
	for _, l := range s.lessons {
		_, completed := results[l.ID]
		out = append(out, LessonView{Lesson: *l, Completed: completed})
	}
	return out
}

// RecordQuiz stores a quiz score for a lesson, keeping the best score.
// Any submission marks the lesson completed.
func (s *Store) RecordQuiz(userID, lessonID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lessonExists(lessonID) {
		return ErrNotFound
	}

	results := s.quizzes[userID]
	if results == nil {
		results = make(map[string]*QuizResult)
		s.quizzes[userID] = results
	}
	if prev, ok := results[lessonID]; ok && prev.Score >= score {
		return nil
	}
	results[lessonID] = &QuizResult{LessonID: lessonID, Score: score}
	return nil
}

// AcademyProgress returns the user's completion percentage across lessons.
func (s *Store) AcademyProgress(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lessons) == 0 {
		return 0
	}
	return len(s.quizzes[userID]) * 100 / len(s.lessons)
}

func (s *Store) lessonExists(id string) bool {
	for _, l := range s.lessons {
		if l.ID == id {
			return true
		}
	}
	return false
}
