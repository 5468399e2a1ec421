package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/auth"
)

type fakeAccounts struct {
	users map[int64]*models.User
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeAccounts) GetByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeTeacherProfiles struct {
	byUserID map[int64]*models.Teacher
}

func (f *fakeTeacherProfiles) GetByUserID(_ context.Context, userID int64) (*models.Teacher, error) {
	return f.byUserID[userID], nil
}

type tokenRecord struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
}

type fakeTokens struct {
	records map[string]*tokenRecord
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{records: make(map[string]*tokenRecord)}
}

func (f *fakeTokens) Create(_ context.Context, token string, userID int64, expiresAt time.Time) error {
	f.records[token] = &tokenRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (f *fakeTokens) GetByValue(_ context.Context, token string) (int64, error) {
	rec, ok := f.records[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	if rec.revoked {
		return 0, apperrors.ErrTokenRevoked
	}
	if rec.expiresAt.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return rec.userID, nil
}

func (f *fakeTokens) Revoke(_ context.Context, token string) error {
	rec, ok := f.records[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rec.revoked = true
	return nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "bandroom-test",
	})
}

func newAuthFixture(t *testing.T) (AuthService, *fakeTokens, *auth.JWTService) {
	t.Helper()

	hash, err := auth.HashPassword("mellon123")
	require.NoError(t, err)

	accounts := &fakeAccounts{users: map[int64]*models.User{
		1: {ID: 1, Email: "laura@bandroom.local", Username: "laura", PasswordHash: hash},
	}}
	profiles := &fakeTeacherProfiles{byUserID: map[int64]*models.Teacher{
		1: {ID: 7, Name: "Laura Finch"},
	}}
	tokens := newFakeTokens()
	jwtService := newTestJWTService()

	return NewAuthService(accounts, profiles, tokens, jwtService), tokens, jwtService
}

func login(t *testing.T, svc AuthService) *dto.LoginResponse {
	t.Helper()
	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "laura@bandroom.local",
		Password: "mellon123",
	})
	require.NoError(t, err)
	return resp
}

func TestLoginStoresRefreshToken(t *testing.T) {
	svc, tokens, jwtService := newAuthFixture(t)

	resp := login(t, svc)

	require.NotEmpty(t, resp.RefreshToken)
	rec, ok := tokens.records[resp.RefreshToken]
	require.True(t, ok, "refresh token must be persisted at sign-in")
	assert.Equal(t, int64(1), rec.userID)
	assert.True(t, rec.expiresAt.After(time.Now()))

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, int64(7), claims.TeacherID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, tokens, jwtService := newAuthFixture(t)

	first := login(t, svc)
	second, err := svc.RefreshToken(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(second.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, int64(7), claims.TeacherID)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	_, ok := tokens.records[second.RefreshToken]
	assert.True(t, ok, "rotated refresh token must be persisted")
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	svc, tokens, _ := newAuthFixture(t)

	first := login(t, svc)
	_, err := svc.RefreshToken(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.True(t, tokens.records[first.RefreshToken].revoked)

	_, err = svc.RefreshToken(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenUnknownValue(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-stored-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, tokens, _ := newAuthFixture(t)

	tokens.records["stale"] = &tokenRecord{
		userID:    1,
		expiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.RefreshToken(context.Background(), "stale")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, tokens, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "laura@bandroom.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Empty(t, tokens.records)
}
