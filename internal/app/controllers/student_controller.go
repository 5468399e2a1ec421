package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/services"
	"github.com/bandroom/backend/internal/middleware"
	"github.com/bandroom/backend/internal/pkg/helpers"
)

// StudentController handles student roster endpoints
type StudentController struct {
	studentService services.StudentService
	songService    services.SongService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, songService services.SongService) *StudentController {
	return &StudentController{
		studentService: studentService,
		songService:    songService,
	}
}

// Create handles POST /students
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	student, err := c.studentService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toStudentResponse(student)))
}

// GetByID handles GET /students/:id
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid student ID"))
		return
	}

	student, err := c.studentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toStudentResponse(student)))
}

// List handles GET /students
func (c *StudentController) List(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid filter parameters"))
		return
	}
	filter.Page, filter.PageSize = helpers.ParsePaginationParams(ctx)

	students, pagination, err := c.studentService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		items = append(items, toStudentResponse(s))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewPaginatedResponse(items, pagination)))
}

// Update handles PUT /students/:id
func (c *StudentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid student ID"))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	student, err := c.studentService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toStudentResponse(student)))
}

// Delete handles DELETE /students/:id
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid student ID"))
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetSongs handles GET /students/:id/songs, the songs the student performs on
func (c *StudentController) GetSongs(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid student ID"))
		return
	}

	songs, err := c.songService.ListForStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.SongResponse, 0, len(songs))
	for _, s := range songs {
		items = append(items, toSongResponse(s))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

func toStudentResponse(s *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:         s.ID,
		Name:       s.Name,
		Username:   s.Username,
		DOB:        s.DOB,
		Age:        helpers.Age(s.DOB),
		Instrument: string(s.Instrument),
		ImageURL:   s.ImageURL,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
