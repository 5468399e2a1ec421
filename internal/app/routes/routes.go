package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandroom/backend/internal/app/controllers"
	"github.com/bandroom/backend/internal/middleware"
	"github.com/bandroom/backend/internal/pkg/auth"
)

// Controllers bundles everything the router wires up
type Controllers struct {
	Auth    *controllers.AuthController
	Teacher *controllers.TeacherController
	Student *controllers.StudentController
	Song    *controllers.SongController
	Band    *controllers.BandController
	Setlist *controllers.SetlistController
	Comment *controllers.CommentController
}

// SetupRoutes registers the full /api/v1 surface. Reads are public; roster
// mutation and comment submission require a signed-in teacher.
func SetupRoutes(router *gin.Engine, c Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", c.Auth.Login)
		authGroup.POST("/refresh", c.Auth.RefreshToken)
	}

	signedIn := middleware.JWTAuth(jwtService)
	teacherOnly := middleware.TeacherRequired()

	students := v1.Group("/students")
	{
		students.GET("", c.Student.List)
		students.GET("/:id", c.Student.GetByID)
		students.POST("", signedIn, teacherOnly, c.Student.Create)
		students.PUT("/:id", signedIn, teacherOnly, c.Student.Update)
		students.DELETE("/:id", signedIn, teacherOnly, c.Student.Delete)
		students.GET("/:id/songs", c.Student.GetSongs)
		students.GET("/:id/comments", c.Comment.GetStudentFeed)
		students.POST("/:id/comments", signedIn, teacherOnly, c.Comment.SubmitStudentComment)
		students.GET("/:id/mentions", c.Comment.GetStudentMentions)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", c.Teacher.List)
		teachers.GET("/:id", c.Teacher.GetByID)
		teachers.POST("", signedIn, teacherOnly, c.Teacher.Create)
		teachers.PUT("/:id", signedIn, teacherOnly, c.Teacher.Update)
		teachers.DELETE("/:id", signedIn, teacherOnly, c.Teacher.Delete)
	}

	songs := v1.Group("/songs")
	{
		songs.GET("", c.Song.List)
		songs.GET("/:id", c.Song.GetByID)
		songs.POST("", signedIn, teacherOnly, c.Song.Create)
		songs.PUT("/:id", signedIn, teacherOnly, c.Song.Update)
		songs.DELETE("/:id", signedIn, teacherOnly, c.Song.Delete)
		songs.GET("/:id/comments", c.Comment.GetSongFeed)
		songs.POST("/:id/comments", signedIn, teacherOnly, c.Comment.SubmitSongComment)
	}

	bands := v1.Group("/bands")
	{
		bands.GET("", c.Band.List)
		bands.GET("/:id", c.Band.GetByID)
		bands.POST("", signedIn, teacherOnly, c.Band.Create)
		bands.PUT("/:id", signedIn, teacherOnly, c.Band.Update)
		bands.DELETE("/:id", signedIn, teacherOnly, c.Band.Delete)
		bands.GET("/:id/setlist", c.Setlist.Current)
		bands.GET("/:id/setlists", c.Setlist.ListForBand)
		bands.POST("/:id/setlists", signedIn, teacherOnly, c.Setlist.Create)
		bands.DELETE("/:id/setlists/:setlistId", signedIn, teacherOnly, c.Setlist.Delete)
	}
}
