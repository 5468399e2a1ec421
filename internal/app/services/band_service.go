package services

import (
	"context"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// BandService handles band membership and scheduling
type BandService interface {
	Create(ctx context.Context, req dto.CreateBandRequest) (*models.Band, error)
	GetByID(ctx context.Context, id int64) (*models.Band, error)
	List(ctx context.Context, ageGroup string) ([]*models.Band, error)
	Update(ctx context.Context, id int64, req dto.UpdateBandRequest) (*models.Band, error)
	Delete(ctx context.Context, id int64) error
}

type bandService struct {
	bands *repositories.BandRepository
}

// NewBandService creates a new BandService
func NewBandService(bands *repositories.BandRepository) BandService {
	return &bandService{bands: bands}
}

func (s *bandService) Create(ctx context.Context, req dto.CreateBandRequest) (*models.Band, error) {
	if !models.IsValidAgeGroup(req.AgeGroup) {
		return nil, apperrors.NewBadRequestError("unknown age group: " + req.AgeGroup)
	}

	band := &models.Band{
		Name:     req.Name,
		AgeGroup: models.AgeGroup(req.AgeGroup),
		Schedule: req.Schedule,
	}
	if err := s.bands.Create(ctx, band, req.StudentIDs, req.TeacherIDs); err != nil {
		return nil, err
	}
	return s.bands.GetByID(ctx, band.ID)
}

func (s *bandService) GetByID(ctx context.Context, id int64) (*models.Band, error) {
	return s.bands.GetByID(ctx, id)
}

func (s *bandService) List(ctx context.Context, ageGroup string) ([]*models.Band, error) {
	if ageGroup != "" && !models.IsValidAgeGroup(ageGroup) {
		return nil, apperrors.NewBadRequestError("unknown age group: " + ageGroup)
	}
	return s.bands.List(ctx, ageGroup)
}

func (s *bandService) Update(ctx context.Context, id int64, req dto.UpdateBandRequest) (*models.Band, error) {
	band, err := s.bands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		band.Name = *req.Name
	}
	if req.AgeGroup != nil {
		if !models.IsValidAgeGroup(*req.AgeGroup) {
			return nil, apperrors.NewBadRequestError("unknown age group: " + *req.AgeGroup)
		}
		band.AgeGroup = models.AgeGroup(*req.AgeGroup)
	}
	if req.Schedule != nil {
		band.Schedule = *req.Schedule
	}

	err = s.bands.Update(ctx, band, req.StudentIDs != nil, req.StudentIDs, req.TeacherIDs != nil, req.TeacherIDs)
	if err != nil {
		return nil, err
	}
	return s.bands.GetByID(ctx, id)
}

func (s *bandService) Delete(ctx context.Context, id int64) error {
	return s.bands.Delete(ctx, id)
}
