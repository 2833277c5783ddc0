package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

func (h *Handlers) forumIndex(w http.ResponseWriter, r *http.Request) error {
	httpx.JSON(w, http.StatusOK, api.ForumResponse{Posts: apiPostSummaries(h.store.Posts())})
	return nil
}

func (h *Handlers) forumPost(w http.ResponseWriter, r *http.Request) error {
	p, err := h.store.Post(httpx.Param(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.ErrNotFound("post not found")
		}
		return err
	}

	out := api.Post{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		Category: p.Category,
		Author:   p.Author,
		Date:     p.Date,
		Upvotes:  p.Upvotes,
		Replies:  make([]api.Reply, 0, len(p.Replies)),
	}
	for _, rep := range p.Replies {
		out.Replies = append(out.Replies, api.Reply{
			ID:      rep.ID,
			Author:  rep.Author,
			Content: rep.Content,
			Date:    rep.Date,
			Upvotes: rep.Upvotes,
		})
	}
	httpx.JSON(w, http.StatusOK, api.PostResponse{Post: out})
	return nil
}

func (h *Handlers) createPost(w http.ResponseWriter, r *http.Request) error {
	var req api.CreatePostRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	title := h.cleanText(req.Title)
	content := h.cleanText(req.Content)
	category := h.cleanText(req.Category)
	if title == "" || content == "" {
		return httpx.ErrBadRequest("title and content are required")
	}

	u, err := h.currentUser(r)
	if err != nil {
		return err
	}

	created := h.store.CreatePost(u.Name, title, content, category)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": created.ID})
	return nil
}

func (h *Handlers) replyToPost(w http.ResponseWriter, r *http.Request) error {
	var req api.ReplyRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}

	content := h.cleanText(req.Content)
	if content == "" {
		return httpx.ErrBadRequest("reply content is required")
	}

	u, err := h.currentUser(r)
	if err != nil {
		return err
	}

	reply, err := h.store.AddReply(httpx.Param(r, "id"), u.Name, content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.ErrNotFound("post not found")
		}
		return err
	}

	httpx.JSON(w, http.StatusCreated, map[string]string{"id": reply.ID})
	return nil
}

func (h *Handlers) upvoteReply(w http.ResponseWriter, r *http.Request) error {
	count, err := h.store.UpvoteReply(httpx.Param(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.ErrNotFound("reply not found")
		}
		return err
	}

	httpx.JSON(w, http.StatusOK, map[string]int{"upvotes": count})
	return nil
}

// cleanText strips all HTML from user-submitted forum text.
func (h *Handlers) cleanText(s string) string {
	return strings.TrimSpace(h.plainText.Sanitize(s))
}
