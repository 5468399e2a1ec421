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

// SetlistController handles band setlist endpoints
type SetlistController struct {
	setlistService services.SetlistService
}

// NewSetlistController creates a new SetlistController
func NewSetlistController(setlistService services.SetlistService) *SetlistController {
	return &SetlistController{setlistService: setlistService}
}

// Create handles POST /bands/:id/setlists
func (c *SetlistController) Create(ctx *gin.Context) {
	bandID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	var req dto.CreateSetlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	setlist, err := c.setlistService.Create(ctx, bandID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toSetlistResponse(setlist)))
}

// ListForBand handles GET /bands/:id/setlists
func (c *SetlistController) ListForBand(ctx *gin.Context) {
	bandID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	setlists, err := c.setlistService.ListForBand(ctx, bandID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.SetlistResponse, 0, len(setlists))
	for _, l := range setlists {
		items = append(items, toSetlistResponse(l))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Current handles GET /bands/:id/setlist, the program for the current season
func (c *SetlistController) Current(ctx *gin.Context) {
	bandID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid band ID"))
		return
	}

	setlist, err := c.setlistService.CurrentForBand(ctx, bandID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toSetlistResponse(setlist)))
}

// Delete handles DELETE /bands/:id/setlists/:setlistId
func (c *SetlistController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("setlistId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid setlist ID"))
		return
	}

	if err := c.setlistService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toSetlistResponse(l *models.Setlist) dto.SetlistResponse {
	resp := dto.SetlistResponse{
		ID:        l.ID,
		BandID:    l.BandID,
		SeasonID:  l.SeasonID,
		Theme:     l.Theme,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	for _, s := range l.Songs {
		resp.Songs = append(resp.Songs, dto.SongRef{
			ID:     s.ID,
			Title:  s.Title,
			Artist: s.Artist,
			Key:    s.Key,
			BPM:    s.BPM,
		})
	}
	return resp
}
