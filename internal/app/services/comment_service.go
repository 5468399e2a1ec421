package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/logger"
)

// CommentService executes validated comment commands and orchestrates the
// whole submit round trip: validate, apply, re-read the feed
type CommentService interface {
	Create(ctx context.Context, cmd CreateComment) (int64, error)
	Update(ctx context.Context, cmd UpdateComment) (int64, error)
	Delete(ctx context.Context, cmd DeleteComment) error
	Submit(ctx context.Context, form CommentForm, scope models.CommentScope, requesterID int64) (*dto.SubmitCommentResponse, error)
}

type commentService struct {
	comments  CommentStore
	validator *CommentValidator
	feed      FeedService
	logger    zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(comments CommentStore, validator *CommentValidator, feed FeedService) CommentService {
	return &commentService{
		comments:  comments,
		validator: validator,
		feed:      feed,
		logger:    logger.WithField("component", "comment_service"),
	}
}

// Create inserts a new comment with its mention set in one transaction
func (s *commentService) Create(ctx context.Context, cmd CreateComment) (int64, error) {
	comment := &models.Comment{
		Scope:    cmd.Scope,
		ScopeID:  cmd.ScopeID,
		Content:  cmd.Content,
		AuthorID: cmd.AuthorID,
	}
	if err := s.comments.Create(ctx, comment, cmd.Mentions); err != nil {
		return 0, apperrors.NewPersistenceError(err, "could not create comment")
	}

	s.logger.Debug().
		Int64("commentId", comment.ID).
		Str("scope", string(cmd.Scope)).
		Int64("scopeId", cmd.ScopeID).
		Msg("Comment created")

	return comment.ID, nil
}

// Update rewrites content and replaces the mention set wholesale
func (s *commentService) Update(ctx context.Context, cmd UpdateComment) (int64, error) {
	comment := &models.Comment{
		ID:       cmd.ID,
		Scope:    cmd.Scope,
		ScopeID:  cmd.ScopeID,
		Content:  cmd.Content,
		AuthorID: cmd.AuthorID,
	}
	if err := s.comments.Update(ctx, comment, cmd.Mentions); err != nil {
		return 0, apperrors.NewPersistenceError(err, "could not update comment")
	}

	s.logger.Debug().
		Int64("commentId", comment.ID).
		Str("scope", string(cmd.Scope)).
		Msg("Comment updated")

	return comment.ID, nil
}

// Delete removes a comment. Authorization already happened in validation via
// the author-filtered lookup.
func (s *commentService) Delete(ctx context.Context, cmd DeleteComment) error {
	if err := s.comments.Delete(ctx, cmd.Scope, cmd.ID); err != nil {
		return apperrors.NewPersistenceError(err, "could not delete comment")
	}

	s.logger.Debug().
		Int64("commentId", cmd.ID).
		Str("scope", string(cmd.Scope)).
		Msg("Comment deleted")

	return nil
}

// Submit runs one full submission: validation, command execution, then a
// fresh feed read for the scope so the caller can re-render. Validation
// failures come back as a structured error result, never as an error return.
func (s *commentService) Submit(ctx context.Context, form CommentForm, scope models.CommentScope, requesterID int64) (*dto.SubmitCommentResponse, error) {
	result, err := s.validator.Validate(ctx, form, scope, requesterID)
	if err != nil {
		return nil, err
	}

	if result.Status != ValidationSuccess {
		return &dto.SubmitCommentResponse{
			Status:      result.Status,
			FieldErrors: result.FieldErrors,
			FormErrors:  result.FormErrors,
		}, nil
	}

	var scopeID int64
	switch cmd := result.Command.(type) {
	case CreateComment:
		if _, err := s.Create(ctx, cmd); err != nil {
			return nil, err
		}
		scopeID = cmd.ScopeID
	case UpdateComment:
		if _, err := s.Update(ctx, cmd); err != nil {
			return nil, err
		}
		scopeID = cmd.ScopeID
	case DeleteComment:
		if err := s.Delete(ctx, cmd); err != nil {
			return nil, err
		}
		scopeID, err = scopeIDForDelete(form, scope)
		if err != nil {
			// No scope target on the form; succeed without a feed.
			return &dto.SubmitCommentResponse{Status: ValidationSuccess}, nil
		}
	default:
		return &dto.SubmitCommentResponse{Status: result.Status}, nil
	}

	feed, err := s.feed.GetFeed(ctx, scope, scopeID, 0)
	if err != nil {
		return nil, err
	}

	return &dto.SubmitCommentResponse{
		Status:   ValidationSuccess,
		Comments: feed,
	}, nil
}

func scopeIDForDelete(form CommentForm, scope models.CommentScope) (int64, error) {
	raw := form.StudentID
	if scope == models.ScopeSong {
		raw = form.SongID
	}
	return strconv.ParseInt(raw, 10, 64)
}
