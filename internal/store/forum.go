package store

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// PostSummary is a post without its replies, plus a reply count.
type PostSummary struct {
	Post
	ReplyCount int
}

// Posts returns all posts newest first, without reply bodies.
func (s *Store) Posts() []PostSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PostSummary, 0, len(s.posts))
	for i := len(s.posts) - 1; i >= 0; i-- {
		p := s.posts[i]
		summary := PostSummary{Post: *p, ReplyCount: len(p.Replies)}
		summary.Replies = nil
		out = append(out, summary)
	}
	return out
}

// TrendingPosts returns the n most-upvoted posts.
func (s *Store) TrendingPosts(n int) []PostSummary {
	posts := s.Posts()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Upvotes > posts[j].Upvotes
	})
	if len(posts) > n {
		posts = posts[:n]
	}
	return posts
}

// Post returns one post with its replies.
func (s *Store) Post(id string) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.postByID(id)
	if p == nil {
		return Post{}, ErrNotFound
	}

	out := *p
	out.Replies = make([]*Reply, len(p.Replies))
	for i, r := range p.Replies {
		clone := *r
		out.Replies[i] = &clone
	}
	return out, nil
}

// CreatePost starts a new thread authored by the given user.
func (s *Store) CreatePost(author, title, content, category string) Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Post{
		ID:       "post-" + uuid.NewString(),
		Title:    title,
		Content:  content,
		Category: category,
		Author:   author,
		Date:     today(),
	}
	s.posts = append(s.posts, p)
	return *p
}

// AddReply appends a reply to a post.
func (s *Store) AddReply(postID, author, content string) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.postByID(postID)
	if p == nil {
		return Reply{}, ErrNotFound
	}

	r := &Reply{
		ID:      "reply-" + uuid.NewString(),
		PostID:  postID,
		Author:  author,
		Content: content,
		Date:    today(),
	}
	p.Replies = append(p.Replies, r)
	s.replies[r.ID] = r
	return *r, nil
}

// UpvoteReply increments a reply's upvote count and returns the new count.
func (s *Store) UpvoteReply(replyID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.replies[replyID]
	if !ok {
		return 0, ErrNotFound
	}
	r.Upvotes++
	return r.Upvotes, nil
}

func (s *Store) postByID(id string) *Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// today formats the current date the way the client renders dates.
func today() string {
	now := time.Now()
	return now.Format("1/2/2006")
}
