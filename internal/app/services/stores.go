package services

import (
	"context"
	"time"

	"github.com/bandroom/backend/internal/app/models"
)

// CommentStore is the persistence surface the comment pipeline consumes.
// *repositories.CommentRepository satisfies it; tests swap in an in-memory
// fake.
type CommentStore interface {
	FindByIDAndAuthor(ctx context.Context, scope models.CommentScope, id, authorID int64) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment, mentionIDs []int64) error
	Update(ctx context.Context, comment *models.Comment, mentionIDs []int64) error
	Delete(ctx context.Context, scope models.CommentScope, id int64) error
	ListForScope(ctx context.Context, scope models.CommentScope, scopeID int64, limit int) ([]*models.Comment, error)
	ListMentioning(ctx context.Context, studentID int64) ([]*models.Comment, error)
}

// DirectoryStore answers roster existence questions for validation.
// *repositories.DirectoryRepository satisfies it.
type DirectoryStore interface {
	TeacherExists(ctx context.Context, id int64) (bool, error)
	StudentExists(ctx context.Context, id int64) (bool, error)
	SongExists(ctx context.Context, id int64) (bool, error)
	MissingStudents(ctx context.Context, ids []int64) ([]int64, error)
}

// AccountStore loads user accounts for authentication.
// *repositories.UserRepository satisfies it.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TeacherProfileStore resolves an account to its teacher profile, (nil, nil)
// when the account has none. *repositories.TeacherRepository satisfies it.
type TeacherProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
}

// TokenStore persists refresh tokens between sign-in and exchange.
// *repositories.TokenRepository satisfies it.
type TokenStore interface {
	Create(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetByValue(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
}

// SetlistStore is the persistence surface for seasons and band setlists.
// *repositories.SetlistRepository satisfies it.
type SetlistStore interface {
	CurrentSeason(ctx context.Context) (*models.Season, error)
	Create(ctx context.Context, setlist *models.Setlist, songIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Setlist, error)
	ListForBand(ctx context.Context, bandID int64) ([]*models.Setlist, error)
	Delete(ctx context.Context, id int64) error
}
