package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/auth"
	"github.com/bandroom/backend/internal/pkg/logger"
)

// AuthService handles sign-in and token refresh
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	users    AccountStore
	teachers TeacherProfileStore
	tokens   TokenStore
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users AccountStore, teachers TeacherProfileStore, tokens TokenStore, jwt *auth.JWTService) AuthService {
	return &authService{
		users:    users,
		teachers: teachers,
		tokens:   tokens,
		jwt:      jwt,
		logger:   logger.WithField("component", "auth_service"),
	}
}

// Login verifies credentials and issues a token pair. A wrong email and a
// wrong password report the same invalid-credentials error.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewPersistenceError(err, "could not load user")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Debug().Str("email", req.Email).Msg("Password check failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID, user.Email, user.Username)
}

// RefreshToken exchanges a stored refresh token for a fresh pair. The spent
// token is revoked so it cannot be exchanged twice.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	userID, err := s.tokens.GetByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) ||
			errors.Is(err, apperrors.ErrTokenRevoked) ||
			errors.Is(err, apperrors.ErrTokenExpired) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError(err, "could not look up refresh token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, apperrors.NewPersistenceError(err, "could not load user")
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, apperrors.NewPersistenceError(err, "could not revoke refresh token")
	}

	return s.issueTokens(ctx, user.ID, user.Email, user.Username)
}

func (s *authService) issueTokens(ctx context.Context, userID int64, email, username string) (*dto.LoginResponse, error) {
	var teacherID int64
	teacher, err := s.teachers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "could not load teacher profile")
	}
	if teacher != nil {
		teacherID = teacher.ID
	}

	pair, err := s.jwt.GenerateTokenPair(userID, teacherID, email)
	if err != nil {
		return nil, apperrors.NewCustomError(err, "could not issue tokens")
	}

	if err := s.tokens.Create(ctx, pair.RefreshToken, userID, s.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, apperrors.NewPersistenceError(err, "could not store refresh token")
	}

	return &dto.LoginResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		ExpiresIn:        int64(pair.ExpiresIn),
		RefreshExpiresIn: int64(pair.RefreshExpiresIn),
		UserID:           userID,
		TeacherID:        teacherID,
		Email:            email,
		Username:         username,
	}, nil
}
