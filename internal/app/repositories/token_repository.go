package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/dberrors"
)

// TokenRepository handles database operations for refresh tokens. Tokens are
// opaque values; validity is decided by lookup, not by parsing.
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: pool}
}

// Create stores a freshly issued refresh token for an account
func (r *TokenRepository) Create(ctx context.Context, token string, userID int64, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	if _, err := r.db.Exec(ctx, query, token, userID, expiresAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "refresh_tokens_token_key") {
			return apperrors.ErrTokenInvalid
		}
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// GetByValue resolves a refresh token to its account id. A missing, revoked
// or expired token reports the matching sentinel.
func (r *TokenRepository) GetByValue(ctx context.Context, token string) (int64, error) {
	query := `
		SELECT user_id, expires_at, is_revoked
		FROM refresh_tokens
		WHERE token = $1
	`

	var userID int64
	var expiresAt time.Time
	var isRevoked bool
	err := r.db.QueryRow(ctx, query, token).Scan(&userID, &expiresAt, &isRevoked)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrTokenNotFound
		}
		return 0, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if isRevoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if expiresAt.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return userID, nil
}

// Revoke marks a refresh token as spent so it cannot be exchanged again
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	result, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET is_revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTokenNotFound
	}
	return nil
}

// DeleteExpired removes tokens past their expiry and revoked tokens older
// than thirty days. Startup runs it so the table does not grow unbounded.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE expires_at < NOW()
		   OR (is_revoked AND created_at < NOW() - INTERVAL '30 days')
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error cleaning up refresh tokens: %w", err)
	}
	return result.RowsAffected(), nil
}
