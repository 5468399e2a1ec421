package services

import (
	"context"

	"github.com/bandroom/backend/internal/app/models"
	"github.com/bandroom/backend/internal/app/models/dto"
	"github.com/bandroom/backend/internal/app/repositories"
	"github.com/bandroom/backend/internal/pkg/apperrors"
)

// TeacherService handles teacher roster management
type TeacherService interface {
	Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	List(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

type teacherService struct {
	teachers *repositories.TeacherRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teachers *repositories.TeacherRepository) TeacherService {
	return &teacherService{teachers: teachers}
}

func (s *teacherService) Create(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	instruments, err := parseInstrumentTags(req.Instruments)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:        req.Name,
		Bio:         req.Bio,
		Instruments: instruments,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teachers.GetByID(ctx, id)
}

func (s *teacherService) List(ctx context.Context) ([]*models.Teacher, error) {
	return s.teachers.List(ctx)
}

func (s *teacherService) Update(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Bio != nil {
		teacher.Bio = req.Bio
	}
	if req.Instruments != nil {
		instruments, err := parseInstrumentTags(req.Instruments)
		if err != nil {
			return nil, err
		}
		teacher.Instruments = instruments
	}

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, id int64) error {
	return s.teachers.Delete(ctx, id)
}

func parseInstrumentTags(tags []string) ([]models.Instrument, error) {
	instruments := make([]models.Instrument, 0, len(tags))
	for _, tag := range tags {
		if !models.IsValidInstrument(tag) {
			return nil, apperrors.NewBadRequestError("unknown instrument: " + tag)
		}
		instruments = append(instruments, models.Instrument(tag))
	}
	return instruments, nil
}
