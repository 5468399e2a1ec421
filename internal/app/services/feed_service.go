package services

import (
	"context"
	"sort"
	"strings"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// FeedService assembles ordered comment feeds. It is a read-only projection
// over the store and never mutates state.
type FeedService interface {
	GetFeed(ctx context.Context, scope models.CommentScope, scopeID int64, take int) ([]dto.CommentView, error)
	GetMentionFeed(ctx context.Context, studentID int64) ([]dto.CommentView, error)
}

type feedService struct {
	comments CommentStore
}

// NewFeedService creates a new FeedService
func NewFeedService(comments CommentStore) FeedService {
	return &feedService{comments: comments}
}

// GetFeed returns the feed for one student or song, newest activity first
// with lower ids breaking ties. take <= 0 returns the whole feed; call sites
// use take=1 for "most recent" summaries and take=5 for capped previews.
func (s *feedService) GetFeed(ctx context.Context, scope models.CommentScope, scopeID int64, take int) ([]dto.CommentView, error) {
	comments, err := s.comments.ListForScope(ctx, scope, scopeID, take)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "could not load comment feed")
	}
	return s.assemble(comments, take), nil
}

// GetMentionFeed returns every song comment mentioning the student, newest
// activity first
func (s *feedService) GetMentionFeed(ctx context.Context, studentID int64) ([]dto.CommentView, error) {
	comments, err := s.comments.ListMentioning(ctx, studentID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "could not load mention feed")
	}
	return s.assemble(comments, 0), nil
}

// assemble orders and projects store rows into view models. Ordering is
// enforced here rather than trusted from the store so every CommentStore
// implementation yields the same feed.
func (s *feedService) assemble(comments []*models.Comment, take int) []dto.CommentView {
	sort.SliceStable(comments, func(i, j int) bool {
		if !comments[i].UpdatedAt.Equal(comments[j].UpdatedAt) {
			return comments[i].UpdatedAt.After(comments[j].UpdatedAt)
		}
		return comments[i].ID < comments[j].ID
	})

	if take > 0 && len(comments) > take {
		comments = comments[:take]
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		view := dto.CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		view.Author.ID = c.AuthorID
		if c.Author != nil {
			view.Author.Name = c.Author.Name
		}

		names := make([]string, 0, len(c.Mentions))
		for _, m := range c.Mentions {
			view.Mentions = append(view.Mentions, dto.StudentRef{
				ID:       m.ID,
				Name:     m.Name,
				Username: m.Username,
			})
			names = append(names, m.Name)
		}
		view.MentionLine = FormatMentions(names)

		views = append(views, view)
	}

	return views
}

// FormatMentions renders an ordered name list as prose: nothing for an empty
// list, the bare name for one, and "A, B and C" beyond that with only the
// final pair joined by "and".
func FormatMentions(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		head := strings.Join(names[:len(names)-1], ", ")
		return head + " and " + names[len(names)-1]
	}
}
