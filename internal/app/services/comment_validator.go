package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// Form-level messages match the strings the UI renders verbatim
const (
	MsgEmptyContent  = "Please enter a comment before submitting."
	MsgNoteNotFound  = "Note not found"
	MsgUnknownFields = "Something went wrong, please try again."
)

// Submission intents. Anything else is treated as a validation-only pass.
const (
	IntentSubmit        = "submit"
	IntentDeleteComment = "delete-comment"
)

// CommentForm is the raw, untrusted field set of a comment submission.
// Mentions is the comma-joined student id list; it only matters for song
// scope.
type CommentForm struct {
	ID        string
	TeacherID string
	Content   string
	StudentID string
	SongID    string
	Mentions  string
	Intent    string
}

// Command is a validated comment mutation ready for CommentService
type Command interface {
	isCommand()
}

// CreateComment inserts a new comment on the scope target
type CreateComment struct {
	Scope    models.CommentScope
	ScopeID  int64
	AuthorID int64
	Content  string
	Mentions []int64
}

// UpdateComment rewrites an existing comment's content and, for song scope,
// replaces its mention set wholesale
type UpdateComment struct {
	ID       int64
	Scope    models.CommentScope
	ScopeID  int64
	AuthorID int64
	Content  string
	Mentions []int64
}

// DeleteComment removes an existing comment owned by the requester
type DeleteComment struct {
	ID    int64
	Scope models.CommentScope
}

func (CreateComment) isCommand() {}
func (UpdateComment) isCommand() {}
func (DeleteComment) isCommand() {}

// Validation statuses
const (
	ValidationSuccess = "success"
	ValidationError   = "error"
	ValidationIdle    = "idle"
)

// ValidationResult is the outcome of one validation pass. On success Command
// is set; on error the field and form error lists describe every failure
// found, not just the first.
type ValidationResult struct {
	Status      string
	Command     Command
	FieldErrors map[string][]string
	FormErrors  []string
}

func (r *ValidationResult) addFieldError(field, message string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string][]string)
	}
	r.FieldErrors[field] = append(r.FieldErrors[field], message)
	r.Status = ValidationError
}

func (r *ValidationResult) addFormError(message string) {
	r.FormErrors = append(r.FormErrors, message)
	r.Status = ValidationError
}

// HasErrors reports whether any field or form error was recorded
func (r *ValidationResult) HasErrors() bool {
	return len(r.FieldErrors) > 0 || len(r.FormErrors) > 0
}

// CommentValidator turns raw comment submissions into typed commands. The
// only remote work it does is existence lookups; all mutation belongs to
// CommentService.
type CommentValidator struct {
	comments  CommentStore
	directory DirectoryStore
}

// NewCommentValidator creates a new CommentValidator
func NewCommentValidator(comments CommentStore, directory DirectoryStore) *CommentValidator {
	return &CommentValidator{comments: comments, directory: directory}
}

// Validate checks one submission for the given scope. requesterID is the
// authenticated teacher; for update and delete the referenced comment must
// belong to them, and a foreign comment reports the same "Note not found" as
// a missing one. Field errors are collected across all fields before the
// result is returned.
func (v *CommentValidator) Validate(ctx context.Context, form CommentForm, scope models.CommentScope, requesterID int64) (*ValidationResult, error) {
	result := &ValidationResult{Status: ValidationSuccess}

	content := strings.TrimSpace(form.Content)
	deleting := form.Intent == IntentDeleteComment

	// A delete submission carries only id and intent; the field contract
	// below applies to create/update and validation-only passes.
	var authorID, scopeID int64
	var mentions []int64
	if !deleting {
		if content == "" {
			result.addFieldError("content", MsgEmptyContent)
		}
		authorID = v.checkTeacher(ctx, form.TeacherID, result)
		scopeID = v.checkScopeTarget(ctx, form, scope, result)
		mentions = v.checkMentions(ctx, form.Mentions, scope, result)
	}

	// The id+author filtered lookup is the sole authorization gate: a comment
	// owned by someone else is indistinguishable from a missing one.
	var existingID int64
	if form.ID != "" {
		id, err := strconv.ParseInt(form.ID, 10, 64)
		if err != nil {
			result.addFieldError("id", MsgNoteNotFound)
		} else {
			existing, lookupErr := v.comments.FindByIDAndAuthor(ctx, scope, id, requesterID)
			if lookupErr != nil {
				return nil, apperrors.NewPersistenceError(lookupErr, "comment lookup failed")
			}
			if existing == nil {
				result.addFieldError("id", MsgNoteNotFound)
			} else {
				existingID = existing.ID
			}
		}
	}

	switch form.Intent {
	case IntentDeleteComment:
		if form.ID == "" {
			result.addFieldError("id", MsgNoteNotFound)
		}
		if result.HasErrors() {
			return result, nil
		}
		result.Command = DeleteComment{ID: existingID, Scope: scope}
		return result, nil

	case IntentSubmit:
		if result.HasErrors() {
			return result, nil
		}
		if form.ID == "" {
			result.Command = CreateComment{
				Scope:    scope,
				ScopeID:  scopeID,
				AuthorID: authorID,
				Content:  content,
				Mentions: mentions,
			}
		} else {
			result.Command = UpdateComment{
				ID:       existingID,
				Scope:    scope,
				ScopeID:  scopeID,
				AuthorID: authorID,
				Content:  content,
				Mentions: mentions,
			}
		}
		return result, nil

	default:
		// Validation-only pass for live feedback; no command, no mutation.
		if !result.HasErrors() {
			result.Status = ValidationIdle
		}
		return result, nil
	}
}

func (v *CommentValidator) checkTeacher(ctx context.Context, raw string, result *ValidationResult) int64 {
	if raw == "" {
		result.addFieldError("teacherId", "Teacher is required")
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		result.addFieldError("teacherId", "Teacher is required")
		return 0
	}
	exists, err := v.directory.TeacherExists(ctx, id)
	if err != nil {
		result.addFormError(MsgUnknownFields)
		return 0
	}
	if !exists {
		result.addFieldError("teacherId", "Teacher not found")
		return 0
	}
	return id
}

func (v *CommentValidator) checkScopeTarget(ctx context.Context, form CommentForm, scope models.CommentScope, result *ValidationResult) int64 {
	var raw, field string
	var exists func(context.Context, int64) (bool, error)

	switch scope {
	case models.ScopeStudent:
		raw, field, exists = form.StudentID, "studentId", v.directory.StudentExists
	case models.ScopeSong:
		raw, field, exists = form.SongID, "songId", v.directory.SongExists
	default:
		result.addFormError(MsgUnknownFields)
		return 0
	}

	if raw == "" {
		result.addFieldError(field, "Required")
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		result.addFieldError(field, "Required")
		return 0
	}
	ok, err := exists(ctx, id)
	if err != nil {
		result.addFormError(MsgUnknownFields)
		return 0
	}
	if !ok {
		result.addFieldError(field, "Not found")
		return 0
	}
	return id
}

// checkMentions parses the comma-joined mention list for song scope,
// collapsing duplicates while keeping first-seen order, and rejects ids with
// no matching student.
func (v *CommentValidator) checkMentions(ctx context.Context, raw string, scope models.CommentScope, result *ValidationResult) []int64 {
	if scope != models.ScopeSong || raw == "" {
		return nil
	}

	var ids []int64
	seen := make(map[int64]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			result.addFieldError("mentions", "Invalid mention id "+part)
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil
	}

	missing, err := v.directory.MissingStudents(ctx, ids)
	if err != nil {
		result.addFormError(MsgUnknownFields)
		return nil
	}
	for _, id := range missing {
		result.addFieldError("mentions", "Student "+strconv.FormatInt(id, 10)+" not found")
	}

	return ids
}
