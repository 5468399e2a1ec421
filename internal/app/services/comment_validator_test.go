package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/models"
)

func seededStore() *fakeStore {
	store := newFakeStore()
	store.addTeacher(1, "Miss Laura")
	store.addTeacher(2, "Mr. Dan")
	store.addStudent(10, "Alice", "alice")
	store.addStudent(11, "Bob", "bob")
	store.addStudent(12, "Cleo", "cleo")
	store.addSong(100)
	return store
}

func TestValidateEmptyContent(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	for _, tc := range []struct {
		name    string
		scope   models.CommentScope
		form    CommentForm
	}{
		{"student scope", models.ScopeStudent, CommentForm{TeacherID: "1", StudentID: "10", Content: "", Intent: IntentSubmit}},
		{"song scope", models.ScopeSong, CommentForm{TeacherID: "1", SongID: "100", Content: "   ", Intent: IntentSubmit}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, err := validator.Validate(context.Background(), tc.form, tc.scope, 1)
			require.NoError(t, err)

			assert.Equal(t, ValidationError, result.Status)
			assert.Contains(t, result.FieldErrors["content"], MsgEmptyContent)
			assert.Nil(t, result.Command)
			assert.Empty(t, store.comments, "validation failure must not touch the store")
		})
	}
}

func TestValidateCreateCommand(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	form := CommentForm{
		TeacherID: "1",
		SongID:    "100",
		Content:   "  Great job!  ",
		Mentions:  "10,11,10, 12",
		Intent:    IntentSubmit,
	}
	result, err := validator.Validate(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, result.Status)

	cmd, ok := result.Command.(CreateComment)
	require.True(t, ok, "expected a create command, got %T", result.Command)
	assert.Equal(t, models.ScopeSong, cmd.Scope)
	assert.Equal(t, int64(100), cmd.ScopeID)
	assert.Equal(t, int64(1), cmd.AuthorID)
	assert.Equal(t, "Great job!", cmd.Content, "content is trimmed")
	assert.Equal(t, []int64{10, 11, 12}, cmd.Mentions, "duplicates collapse, first-seen order kept")
}

func TestValidateUpdateCommand(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	comment := &models.Comment{Scope: models.ScopeStudent, ScopeID: 10, Content: "old", AuthorID: 1}
	require.NoError(t, store.Create(context.Background(), comment, nil))

	form := CommentForm{
		ID:        "1",
		TeacherID: "1",
		StudentID: "10",
		Content:   "new text",
		Intent:    IntentSubmit,
	}
	result, err := validator.Validate(context.Background(), form, models.ScopeStudent, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, result.Status)

	cmd, ok := result.Command.(UpdateComment)
	require.True(t, ok, "expected an update command, got %T", result.Command)
	assert.Equal(t, comment.ID, cmd.ID)
	assert.Equal(t, "new text", cmd.Content)
}

func TestValidateForeignCommentLooksMissing(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	comment := &models.Comment{Scope: models.ScopeStudent, ScopeID: 10, Content: "by teacher 1", AuthorID: 1}
	require.NoError(t, store.Create(context.Background(), comment, nil))

	foreign := CommentForm{ID: "1", TeacherID: "2", StudentID: "10", Content: "x", Intent: IntentSubmit}
	foreignResult, err := validator.Validate(context.Background(), foreign, models.ScopeStudent, 2)
	require.NoError(t, err)

	missing := CommentForm{ID: "999", TeacherID: "2", StudentID: "10", Content: "x", Intent: IntentSubmit}
	missingResult, err := validator.Validate(context.Background(), missing, models.ScopeStudent, 2)
	require.NoError(t, err)

	// A foreign comment and a nonexistent one must be indistinguishable.
	assert.Equal(t, ValidationError, foreignResult.Status)
	assert.Equal(t, missingResult.FieldErrors["id"], foreignResult.FieldErrors["id"])
	assert.Contains(t, foreignResult.FieldErrors["id"], MsgNoteNotFound)
}

func TestValidateDeleteCommand(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	comment := &models.Comment{Scope: models.ScopeSong, ScopeID: 100, Content: "gone soon", AuthorID: 1}
	require.NoError(t, store.Create(context.Background(), comment, nil))

	form := CommentForm{ID: "1", SongID: "100", Intent: IntentDeleteComment}
	result, err := validator.Validate(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)
	require.Equal(t, ValidationSuccess, result.Status)

	cmd, ok := result.Command.(DeleteComment)
	require.True(t, ok, "expected a delete command, got %T", result.Command)
	assert.Equal(t, comment.ID, cmd.ID)
}

func TestValidateDeleteWithoutID(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	form := CommentForm{SongID: "100", Intent: IntentDeleteComment}
	result, err := validator.Validate(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationError, result.Status)
	assert.Contains(t, result.FieldErrors["id"], MsgNoteNotFound)
}

func TestValidateUnknownIntentIsIdle(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	form := CommentForm{TeacherID: "1", StudentID: "10", Content: "draft text", Intent: "preview"}
	result, err := validator.Validate(context.Background(), form, models.ScopeStudent, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationIdle, result.Status)
	assert.Nil(t, result.Command)
	assert.Empty(t, store.comments)
}

func TestValidateUnknownMentionRejected(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	form := CommentForm{
		TeacherID: "1",
		SongID:    "100",
		Content:   "nice",
		Mentions:  "10,999",
		Intent:    IntentSubmit,
	}
	result, err := validator.Validate(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationError, result.Status)
	assert.Contains(t, result.FieldErrors["mentions"], "Student 999 not found")
	assert.Nil(t, result.Command)
}

func TestValidateCollectsAllFieldErrors(t *testing.T) {
	store := seededStore()
	validator := NewCommentValidator(store, store)

	form := CommentForm{Content: "", Intent: IntentSubmit}
	result, err := validator.Validate(context.Background(), form, models.ScopeSong, 1)
	require.NoError(t, err)

	assert.Equal(t, ValidationError, result.Status)
	assert.Contains(t, result.FieldErrors, "content")
	assert.Contains(t, result.FieldErrors, "teacherId")
	assert.Contains(t, result.FieldErrors, "songId")
}
