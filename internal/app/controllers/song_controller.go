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

// SongController handles setlist endpoints
type SongController struct {
	songService services.SongService
}

// NewSongController creates a new SongController
func NewSongController(songService services.SongService) *SongController {
	return &SongController{songService: songService}
}

// Create handles POST /songs
func (c *SongController) Create(ctx *gin.Context) {
	var req dto.CreateSongRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	song, err := c.songService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toSongResponse(song)))
}

// GetByID handles GET /songs/:id
func (c *SongController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid song ID"))
		return
	}

	song, err := c.songService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toSongResponse(song)))
}

// List handles GET /songs
func (c *SongController) List(ctx *gin.Context) {
	songs, err := c.songService.List(ctx)
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

// Update handles PUT /songs/:id
func (c *SongController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid song ID"))
		return
	}

	var req dto.UpdateSongRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, err.Error()))
		return
	}

	song, err := c.songService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toSongResponse(song)))
}

// Delete handles DELETE /songs/:id
func (c *SongController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid song ID"))
		return
	}

	if err := c.songService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func toSongResponse(s *models.Song) dto.SongResponse {
	resp := dto.SongResponse{
		ID:          s.ID,
		Title:       s.Title,
		Artist:      s.Artist,
		Description: s.Description,
		Key:         s.Key,
		BPM:         s.BPM,
		Lyrics:      s.Lyrics,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for _, st := range s.Students {
		resp.Students = append(resp.Students, dto.StudentRef{
			ID:       st.ID,
			Name:     st.Name,
			Username: st.Username,
		})
	}
	return resp
}
