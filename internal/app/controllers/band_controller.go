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

// BandController handles band endpoints
type BandController struct {
	bandService services.BandService
}

// NewBandController creates a new BandController
func NewBandController(bandService services.BandService) *BandController {
	return &BandController{bandService: bandService}
}

// Create handles POST /bands
func (c *BandController) Create(ctx *gin.Context) {
	var req dto.CreateBandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	band, err := c.bandService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toBandResponse(band)))
}

// GetByID handles GET /bands/:id
func (c *BandController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	band, err := c.bandService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toBandResponse(band)))
}

// List handles GET /bands with an optional ageGroup filter
func (c *BandController) List(ctx *gin.Context) {
	bands, err := c.bandService.List(ctx, ctx.Query("ageGroup"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.BandResponse, 0, len(bands))
	for _, b := range bands {
		items = append(items, toBandResponse(b))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Update handles PUT /bands/:id
func (c *BandController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	var req dto.UpdateBandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	band, err := c.bandService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toBandResponse(band)))
}

// Delete handles DELETE /bands/:id
func (c *BandController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	if err := c.bandService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toBandResponse(b *models.Band) dto.BandResponse {
	resp := dto.BandResponse{
		ID:        b.ID,
		Name:      b.Name,
		AgeGroup:  string(b.AgeGroup),
		Schedule:  b.Schedule,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	for _, s := range b.Students {
		resp.Students = append(resp.Students, dto.StudentRef{
			ID:       s.ID,
			Name:     s.Name,
			Username: s.Username,
		})
	}
	for _, t := range b.Teachers {
		resp.Teachers = append(resp.Teachers, dto.TeacherRef{
			ID:   t.ID,
			Name: t.Name,
		})
	}
	return resp
}
