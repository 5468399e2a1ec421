package services

import (
	"context"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/pkg/apperrors"
	"github.com/bandroom/backend/internal/pkg/validation"
)

// SongService handles setlist management
type SongService interface {
	Create(ctx context.Context, req dto.CreateSongRequest) (*models.Song, error)
	GetByID(ctx context.Context, id int64) (*models.Song, error)
	List(ctx context.Context) ([]*models.Song, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Song, error)
	Update(ctx context.Context, id int64, req dto.UpdateSongRequest) (*models.Song, error)
	Delete(ctx context.Context, id int64) error
}

type songService struct {
	songs *repositories.SongRepository
}

// NewSongService creates a new SongService
func NewSongService(songs *repositories.SongRepository) SongService {
	return &songService{songs: songs}
}

func (s *songService) Create(ctx context.Context, req dto.CreateSongRequest) (*models.Song, error) {
	if !validation.CompiledPatterns.MusicalKey.MatchString(req.Key) {
		return nil, apperrors.NewBadRequestError("invalid musical key: " + req.Key)
	}

	song := &models.Song{
		Title:       req.Title,
		Artist:      req.Artist,
		Description: req.Description,
		Key:         req.Key,
		BPM:         req.BPM,
		Lyrics:      req.Lyrics,
	}
	if err := s.songs.Create(ctx, song, req.StudentIDs); err != nil {
		return nil, err
	}
	return s.songs.GetByID(ctx, song.ID)
}

func (s *songService) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	return s.songs.GetByID(ctx, id)
}

func (s *songService) List(ctx context.Context) ([]*models.Song, error) {
	return s.songs.List(ctx)
}

func (s *songService) ListForStudent(ctx context.Context, studentID int64) ([]*models.Song, error) {
	return s.songs.ListForStudent(ctx, studentID)
}

func (s *songService) Update(ctx context.Context, id int64, req dto.UpdateSongRequest) (*models.Song, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.Artist != nil {
		song.Artist = *req.Artist
	}
	if req.Description != nil {
		song.Description = req.Description
	}
	if req.Key != nil {
		if !validation.CompiledPatterns.MusicalKey.MatchString(*req.Key) {
			return nil, apperrors.NewBadRequestError("invalid musical key: " + *req.Key)
		}
		song.Key = *req.Key
	}
	if req.BPM != nil {
		song.BPM = *req.BPM
	}
	if req.Lyrics != nil {
		song.Lyrics = req.Lyrics
	}

	if err := s.songs.Update(ctx, song, req.StudentIDs != nil, req.StudentIDs); err != nil {
		return nil, err
	}
	return s.songs.GetByID(ctx, id)
}

func (s *songService) Delete(ctx context.Context, id int64) error {
	return s.songs.Delete(ctx, id)
}
