package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/middleware"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) academy(w http.ResponseWriter, r *http.Request) error {
	lessons := h.store.Lessons(middleware.UserID(r.Context()))

	out := api.AcademyResponse{Lessons: make([]api.Lesson, 0, len(lessons))}
	for _, l := range lessons {
		content, err := h.renderLesson(r.Context(), l.Lesson)
		if err != nil {
			return fmt.Errorf("render lesson %s: %w", l.ID, err)
		}
		out.Lessons = append(out.Lessons, api.Lesson{
			ID:        l.ID,
			Title:     l.Title,
			Category:  l.Category,
			Content:   content,
			Duration:  l.Duration,
			Completed: l.Completed,
		})
	}
	httpx.JSON(w, http.StatusOK, out)
	return nil
}

func (h *Handlers) submitQuiz(w http.ResponseWriter, r *http.Request) error {
	var req api.QuizSubmission
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.LessonID == "" {
		return httpx.ErrBadRequest("lessonId is required")
	}
	if req.Score < 0 {
		return httpx.ErrBadRequest("score must not be negative")
	}

	err := h.store.RecordQuiz(middleware.UserID(r.Context()), req.LessonID, req.Score)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.ErrNotFound("lesson not found")
		}
		return err
	}

	httpx.JSON(w, http.StatusNoContent, nil)
	return nil
}

// renderLesson converts lesson markdown to sanitized HTML. Lesson content is
// static, so rendered output is cached by lesson ID.
func (h *Handlers) renderLesson(ctx context.Context, l store.Lesson) (string, error) {
	return h.lessonHTML.GetOrSet(ctx, l.ID, 0, func(context.Context) (string, error) {
		var buf bytes.Buffer
		if err := h.markdown.Convert([]byte(l.Markdown), &buf); err != nil {
			return "", err
		}
		return h.richText.Sanitize(buf.String()), nil
	})
}
