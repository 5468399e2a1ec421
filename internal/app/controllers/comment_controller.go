package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/services"
	"github.com/bandroom/backend/internal/middleware"
)

// CommentController handles comment submission and feed reads for both
// student and song scopes
type CommentController struct {
	commentService services.CommentService
	feedService    services.FeedService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService, feedService services.FeedService) *CommentController {
	return &CommentController{
		commentService: commentService,
		feedService:    feedService,
	}
}

// SubmitStudentComment handles POST /students/:id/comments
func (c *CommentController) SubmitStudentComment(ctx *gin.Context) {
	c.submit(ctx, models.ScopeStudent)
}

// SubmitSongComment handles POST /songs/:id/comments
func (c *CommentController) SubmitSongComment(ctx *gin.Context) {
	c.submit(ctx, models.ScopeSong)
}

// submit runs one form-encoded comment submission. The scope target id comes
// from the path, everything else from the form fields. Validation failures
// reply 400 with the field errors and leave the store untouched.
func (c *CommentController) submit(ctx *gin.Context, scope models.CommentScope) {
	scopeID := ctx.Param("id")

	form := services.CommentForm{
		ID:        ctx.PostForm("id"),
		TeacherID: ctx.PostForm("teacherId"),
		Content:   ctx.PostForm("content"),
		Mentions:  ctx.PostForm("mentions"),
		Intent:    ctx.PostForm("intent"),
	}
	switch scope {
	case models.ScopeStudent:
		form.StudentID = scopeID
	case models.ScopeSong:
		form.SongID = scopeID
	}

	resp, err := c.commentService.Submit(ctx, form, scope, middleware.TeacherID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if resp.Status == services.ValidationError {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, resp)
}

// GetStudentFeed handles GET /students/:id/comments
func (c *CommentController) GetStudentFeed(ctx *gin.Context) {
	c.feed(ctx, models.ScopeStudent)
}

// GetSongFeed handles GET /songs/:id/comments
func (c *CommentController) GetSongFeed(ctx *gin.Context) {
	c.feed(ctx, models.ScopeSong)
}

func (c *CommentController) feed(ctx *gin.Context, scope models.CommentScope) {
	scopeID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid id"))
		return
	}

	take := 0
	if takeStr := ctx.Query("take"); takeStr != "" {
		take, err = strconv.Atoi(takeStr)
		if err != nil || take < 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid take parameter"))
			return
		}
	}

	views, err := c.feedService.GetFeed(ctx, scope, scopeID, take)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentFeedResponse{Comments: views}))
}

// GetStudentMentions handles GET /students/:id/mentions, the song comments
// that call the student out
func (c *CommentController) GetStudentMentions(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid id"))
		return
	}

	views, err := c.feedService.GetMentionFeed(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CommentFeedResponse{Comments: views}))
}
