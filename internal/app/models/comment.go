package models

import "time"

// CommentScope identifies the entity a comment is attached to
type CommentScope string

const (
	ScopeStudent CommentScope = "student"
	ScopeSong    CommentScope = "song"
)

// Comment represents a teacher's comment on a student or a song. ScopeID is
// the student id for student scope and the song id for song scope. Mentions
// are only meaningful for song scope; their order follows submission order.
type Comment struct {
	ID        int64        `json:"id" db:"id"`
	Scope     CommentScope `json:"scope"`
	ScopeID   int64        `json:"scopeId"`
	Content   string       `json:"content" db:"content"`
	AuthorID  int64        `json:"authorId" db:"author_id"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time    `json:"updatedAt" db:"updated_at"`

	// Related entities
	Author   *Teacher   `json:"author,omitempty"`
	Mentions []*Student `json:"mentions,omitempty"`
}

// MentionIDs returns the ids of the mentioned students, in stored order
func (c *Comment) MentionIDs() []int64 {
	ids := make([]int64, 0, len(c.Mentions))
	for _, s := range c.Mentions {
		ids = append(ids, s.ID)
	}
	return ids
}
