package dto

import "time"

// TeacherRef is the compact author shape embedded in comment views
type TeacherRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StudentRef is the compact mention shape embedded in comment views
type StudentRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// CommentView is one rendered feed entry. MentionLine is the human-readable
// "A, B and C" rendering of Mentions, empty when there are none.
type CommentView struct {
	ID          int64        `json:"id"`
	Content     string       `json:"content"`
	Author      TeacherRef   `json:"author"`
	Mentions    []StudentRef `json:"mentions,omitempty"`
	MentionLine string       `json:"mentionLine,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CommentFeedResponse is the reply for feed reads
type CommentFeedResponse struct {
	Comments []CommentView `json:"comments"`
}

// SubmitCommentResponse is the reply for form submissions. Status mirrors the
// validation outcome: "success", "error" or "idle". On success Comments holds
// the re-read feed; on error the field and form errors are populated.
type SubmitCommentResponse struct {
	Status      string              `json:"status"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	FormErrors  []string            `json:"formErrors,omitempty"`
	Comments    []CommentView       `json:"comments,omitempty"`
}
