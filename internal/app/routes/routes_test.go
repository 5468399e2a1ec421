package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandroom/backend/internal/app/controllers"
	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/auth"
)

// fakeStudentService satisfies services.StudentService so middleware
// behavior can be exercised without a database
type fakeStudentService struct{}

func (fakeStudentService) Create(_ context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: 1, Name: req.Name, Username: req.Username, DOB: req.DOB, Instrument: models.Instrument(req.Instrument)}, nil
}

func (fakeStudentService) GetByID(_ context.Context, id int64) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (fakeStudentService) List(_ context.Context, _ dto.StudentFilterRequest) ([]*models.Student, dto.PaginationInfo, error) {
	return nil, dto.PaginationInfo{}, nil
}

func (fakeStudentService) Update(_ context.Context, id int64, _ dto.UpdateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (fakeStudentService) Delete(context.Context, int64) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "bandroom-test",
	})

	router := gin.New()
	SetupRoutes(router, Controllers{
		Student: controllers.NewStudentController(fakeStudentService{}, nil),
	}, jwtService)
	return router, jwtService
}

func bearerFor(t *testing.T, jwtService *auth.JWTService, teacherID int64) string {
	t.Helper()
	pair, err := jwtService.GenerateTokenPair(1, teacherID, "laura@bandroom.local")
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func TestRosterReadsArePublic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRosterWritesRequireSignIn(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRosterWritesRequireTeacherProfile(t *testing.T) {
	router, jwtService := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, jwtService, 0))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRosterWritesAllowTeachers(t *testing.T) {
	router, jwtService := newTestRouter(t)

	body := `{"name":"Alice Martin","username":"alice","dob":"2013-06-15T00:00:00Z","instrument":"vocals"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, jwtService, 7))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
