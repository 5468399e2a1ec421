package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/models"
)

func newCommentService(store *fakeStore) CommentService {
	validator := NewCommentValidator(store, store)
	feed := NewFeedService(store)
	return NewCommentService(store, validator, feed)
}

func TestSubmitCreateEndToEnd(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	form := CommentForm{
		TeacherID: "1",
		SongID:    "100",
		Content:   "Great job!",
		Mentions:  "10,11",
		Intent:    IntentSubmit,
	}
	resp, err := service.Submit(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, resp.Status)

	require.Len(t, resp.Comments, 1)
	entry := resp.Comments[0]
	assert.Equal(t, "Great job!", entry.Content)
	assert.Equal(t, int64(1), entry.Author.ID)
	assert.Equal(t, "Miss Laura", entry.Author.Name)
	require.Len(t, entry.Mentions, 2)
	assert.Equal(t, int64(10), entry.Mentions[0].ID, "mention order follows submission")
	assert.Equal(t, int64(11), entry.Mentions[1].ID)
	assert.Equal(t, "Alice and Bob", entry.MentionLine)
}

func TestUpdateIsIdempotent(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	createResp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", StudentID: "10", Content: "first", Intent: IntentSubmit,
	}, models.ScopeStudent, 1)
	require.NoError(t, err)
	require.Len(t, createResp.Comments, 1)
	id := createResp.Comments[0].ID

	update := UpdateComment{
		ID:       id,
		Scope:    models.ScopeStudent,
		ScopeID:  10,
		AuthorID: 1,
		Content:  "a",
	}
	_, err = service.Update(context.Background(), update)
	require.NoError(t, err)
	_, err = service.Update(context.Background(), update)
	require.NoError(t, err)

	require.Len(t, store.comments, 1, "update must never create rows")
	assert.Equal(t, "a", store.comments[id].Content)
}

func TestMentionReplacementIsTotal(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	resp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", SongID: "100", Content: "with A and B", Mentions: "10,11", Intent: IntentSubmit,
	}, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, resp.Status)
	id := resp.Comments[0].ID

	resp, err = service.Submit(context.Background(), CommentForm{
		ID:        "1",
		TeacherID: "1", SongID: "100", Content: "now just C", Mentions: "12", Intent: IntentSubmit,
	}, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, resp.Status)

	stored := store.comments[id]
	require.Len(t, stored.Mentions, 1, "old mentions must not survive the replace")
	assert.Equal(t, int64(12), stored.Mentions[0].ID)
}

func TestUnauthorizedDeleteLeavesRow(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	resp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", SongID: "100", Content: "mine", Intent: IntentSubmit,
	}, models.ScopeSong, 1)
	require.NoError(t, err)
	id := resp.Comments[0].ID

	// Teacher 2 tries to delete teacher 1's comment.
	resp, err = service.Submit(context.Background(), CommentForm{
		ID: "1", SongID: "100", Intent: IntentDeleteComment,
	}, models.ScopeSong, 2)
	require.NoError(t, err)

	assert.Equal(t, ValidationError, resp.Status)
	assert.Contains(t, resp.FieldErrors["id"], MsgNoteNotFound)
	assert.Contains(t, store.comments, id, "the row must survive")
}

func TestAuthorizedDeleteRemovesRow(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	resp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", SongID: "100", Content: "temporary", Intent: IntentSubmit,
	}, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Len(t, resp.Comments, 1)

	resp, err = service.Submit(context.Background(), CommentForm{
		ID: "1", SongID: "100", Intent: IntentDeleteComment,
	}, models.ScopeSong, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationSuccess, resp.Status)
	assert.Empty(t, resp.Comments)
	assert.Empty(t, store.comments)
}

func TestSubmitValidationFailureMutatesNothing(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	resp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", StudentID: "10", Content: "", Intent: IntentSubmit,
	}, models.ScopeStudent, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationError, resp.Status)
	assert.Empty(t, store.comments)
	assert.Empty(t, resp.Comments)
}

func TestSubmitIdleIntent(t *testing.T) {
	store := seededStore()
	service := newCommentService(store)

	resp, err := service.Submit(context.Background(), CommentForm{
		TeacherID: "1", StudentID: "10", Content: "typing...", Intent: "validate",
	}, models.ScopeStudent, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationIdle, resp.Status)
	assert.Empty(t, store.comments)
}
