package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID    = "userID"
	ContextTeacherID = "teacherID"
	ContextEmail     = "email"
)

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authorization header missing or malformed"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			message := "Invalid token"
			if err == auth.ErrExpiredToken {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextTeacherID, claims.TeacherID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// TeacherRequired rejects callers whose account has no teacher profile.
// Comment mutation routes sit behind it.
func TeacherRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		teacherID := c.GetInt64(ContextTeacherID)
		if teacherID == 0 {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrorCodeForbidden, "Teacher profile required"))
			return
		}
		c.Next()
	}
}

// TeacherID returns the authenticated caller's teacher profile id, zero when
// the caller is not a teacher
func TeacherID(c *gin.Context) int64 {
	return c.GetInt64(ContextTeacherID)
}
